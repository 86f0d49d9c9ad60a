package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"flowtrack/pkg/domain"
	"flowtrack/pkg/storage"
)

const (
	leadsTable = "leads"
)

func (p *PgSQL) StoreLeads(ctx context.Context, leads ...domain.Lead) ([]domain.Lead, error) {
	if len(leads) == 0 {
		return nil, nil
	}

	pgLeads, err := domainLeadsToPg(leads)
	if err != nil {
		return nil, err
	}

	var result []PgLead
	if err := p.Builder.Insert(leadsTable).
		Rows(pgLeads).
		Returning(&PgLead{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store leads into pg: %w", err)
	}

	return pgLeadsToDomain(result)
}

// LeadByID returns a lead by ID scoped to a workspace, excluding soft-deleted
// rows.
func (p *PgSQL) LeadByID(ctx context.Context,
	workspaceID domain.WorkspaceID,
	id domain.LeadID) (*domain.Lead, error) {
	var row PgLead
	found, err := p.Builder.From(leadsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("workspace_id").Eq(uuid.UUID(workspaceID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lead by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// GetLead returns a lead by ID without workspace scoping, excluding
// soft-deleted rows.
func (p *PgSQL) GetLead(ctx context.Context, id domain.LeadID) (*domain.Lead, error) {
	var row PgLead
	found, err := p.Builder.From(leadsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lead: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateLeadByID applies the provided updates to a single lead and returns
// the updated row. Only provided fields change; updated_at is set
// automatically.
func (p *PgSQL) UpdateLeadByID(ctx context.Context,
	id domain.LeadID,
	updates storage.LeadUpdates) (*domain.Lead, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.EnrichmentStatus != "" {
		rec["enrichment_status"] = string(updates.EnrichmentStatus)
	}
	if updates.Enrichment != nil {
		b, err := json.Marshal(updates.Enrichment)
		if err != nil {
			return nil, fmt.Errorf("could not marshal enrichment result: %w", err)
		}

		rec["enrichment"] = b
	}
	if updates.SkipReason != nil {
		if *updates.SkipReason == "" {
			rec["skip_reason"] = goqu.L("NULL")
		} else {
			rec["skip_reason"] = *updates.SkipReason
		}
	}
	if updates.EnrichedAt != nil {
		rec["enriched_at"] = *updates.EnrichedAt
	}

	var row PgLead
	found, err := p.Builder.Update(leadsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLead{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update lead in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LeadsNeedingEnrichment returns up to limit leads whose enrichment is
// PENDING or FAILED, oldest first.
func (p *PgSQL) LeadsNeedingEnrichment(ctx context.Context,
	workspaceID domain.WorkspaceID,
	limit uint) ([]domain.Lead, error) {
	var rows []PgLead
	if err := p.Builder.From(leadsTable).
		Where(
			goqu.I("workspace_id").Eq(uuid.UUID(workspaceID)),
			goqu.I("enrichment_status").In(
				string(domain.EnrichmentStatusPending),
				string(domain.EnrichmentStatusFailed),
			),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch leads needing enrichment: %w", err)
	}

	return pgLeadsToDomain(rows)
}

// WorkspaceLeads returns a page of leads for the workspace created before the
// optional cursor, newest first.
func (p *PgSQL) WorkspaceLeads(ctx context.Context,
	workspaceID domain.WorkspaceID,
	status domain.EnrichmentStatus,
	cursor time.Time,
	limit uint) (storage.LeadPage, error) {
	w := []goqu.Expression{
		goqu.I("workspace_id").Eq(uuid.UUID(workspaceID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("enrichment_status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(leadsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgLead
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.LeadPage{}, fmt.Errorf("could not fetch workspace leads from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgLeadsToDomain(rows)
	if err != nil {
		return storage.LeadPage{}, err
	}

	return storage.LeadPage{
		Leads:      domainRows,
		NextCursor: nextCursor,
	}, nil
}

// DeleteLead soft-deletes a lead by setting deleted_at, returning the deleted
// row.
func (p *PgSQL) DeleteLead(ctx context.Context,
	workspaceID domain.WorkspaceID,
	id domain.LeadID) (*domain.Lead, error) {
	var row PgLead
	found, err := p.Builder.Update(leadsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("workspace_id").Eq(uuid.UUID(workspaceID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLead{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete lead in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
