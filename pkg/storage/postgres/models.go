package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"flowtrack/pkg/domain"
)

// PgLead is the database projection of domain.Lead. The enrichment result is
// stored as a JSONB document and replaced wholesale on every update.
type PgLead struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	WorkspaceID uuid.UUID `db:"workspace_id"`

	Email       string         `db:"email"`
	Name        sql.NullString `db:"name"`
	CompanyName sql.NullString `db:"company_name"`

	EnrichmentStatus string          `db:"enrichment_status"`
	Enrichment       json.RawMessage `db:"enrichment"  goqu:"skipinsert"`
	SkipReason       sql.NullString  `db:"skip_reason" goqu:"skipinsert"`
	EnrichedAt       sql.NullTime    `db:"enriched_at" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() (*domain.Lead, error) {
	var enrichment *domain.EnrichmentResult
	if len(p.Enrichment) > 0 {
		enrichment = &domain.EnrichmentResult{}
		if err := json.Unmarshal(p.Enrichment, enrichment); err != nil {
			return nil, fmt.Errorf("could not unmarshal enrichment result: %w", err)
		}
	}

	return &domain.Lead{
		ID:               domain.LeadID(p.ID),
		WorkspaceID:      domain.WorkspaceID(p.WorkspaceID),
		Email:            p.Email,
		Name:             p.Name.String,
		CompanyName:      p.CompanyName.String,
		EnrichmentStatus: domain.EnrichmentStatus(p.EnrichmentStatus),
		Enrichment:       enrichment,
		SkipReason:       p.SkipReason.String,
		EnrichedAt:       p.EnrichedAt.Time,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}, nil
}

func (p *PgLead) FromDomain(lead domain.Lead) error {
	var enrichment json.RawMessage
	if lead.Enrichment != nil {
		b, err := json.Marshal(lead.Enrichment)
		if err != nil {
			return fmt.Errorf("could not marshal enrichment result: %w", err)
		}
		enrichment = b
	}

	*p = PgLead{
		ID:          uuid.UUID(lead.ID),
		WorkspaceID: uuid.UUID(lead.WorkspaceID),
		Email:       lead.Email,
		Name: sql.NullString{
			String: lead.Name,
			Valid:  lead.Name != "",
		},
		CompanyName: sql.NullString{
			String: lead.CompanyName,
			Valid:  lead.CompanyName != "",
		},
		EnrichmentStatus: string(lead.EnrichmentStatus),
		Enrichment:       enrichment,
		SkipReason: sql.NullString{
			String: lead.SkipReason,
			Valid:  lead.SkipReason != "",
		},
		EnrichedAt: sql.NullTime{
			Time:  lead.EnrichedAt,
			Valid: !lead.EnrichedAt.IsZero(),
		},
		CreatedAt: lead.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  lead.UpdatedAt,
			Valid: !lead.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  lead.DeletedAt,
			Valid: !lead.DeletedAt.IsZero(),
		},
	}

	return nil
}

func domainLeadsToPg(leads []domain.Lead) ([]PgLead, error) {
	out := make([]PgLead, len(leads))
	for i := range out {
		if err := out[i].FromDomain(leads[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgLeadsToDomain(leads []PgLead) ([]domain.Lead, error) {
	out := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		d, err := lead.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
