package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadID uniquely identifies a lead. It wraps uuid.UUID for type safety at
// the domain layer.
type LeadID uuid.UUID

// WorkspaceID identifies the workspace a lead belongs to.
type WorkspaceID uuid.UUID

// EnrichmentStatus is the lifecycle state of a lead's enrichment.
//
// Transitions: PENDING -> PROCESSING -> {COMPLETED | FAILED | SKIPPED}.
// FAILED leads may be re-enqueued, restarting at PROCESSING.
type EnrichmentStatus string

const (
	// EnrichmentStatusPending indicates enrichment has been requested but not started.
	EnrichmentStatusPending EnrichmentStatus = "PENDING"
	// EnrichmentStatusProcessing indicates a worker currently owns the enrichment run.
	EnrichmentStatusProcessing EnrichmentStatus = "PROCESSING"
	// EnrichmentStatusCompleted indicates the run finished and a result is stored.
	// Individual sections of the result may still be empty.
	EnrichmentStatusCompleted EnrichmentStatus = "COMPLETED"
	// EnrichmentStatusFailed indicates the run ended with an unexpected error.
	EnrichmentStatusFailed EnrichmentStatus = "FAILED"
	// EnrichmentStatusSkipped indicates enrichment was deliberately not performed;
	// SkipReason explains why.
	EnrichmentStatusSkipped EnrichmentStatus = "SKIPPED"
)

// Lead is a prospective contact captured by the product, identified primarily
// by email address.
type Lead struct {
	// ID is the unique identifier of the lead.
	ID LeadID `json:"id"`
	// WorkspaceID is the workspace that owns the lead.
	WorkspaceID WorkspaceID `json:"workspaceId"`

	// Email is the lead's address and the primary enrichment input.
	Email string `json:"email"`
	// Name is the lead's display name, when known.
	Name string `json:"name,omitempty"`
	// CompanyName is the organization name supplied with the lead, when known.
	CompanyName string `json:"companyName,omitempty"`

	// EnrichmentStatus is the current lifecycle state of the lead's enrichment.
	EnrichmentStatus EnrichmentStatus `json:"enrichmentStatus"`
	// Enrichment is the latest enrichment result. It is replaced wholesale on
	// re-enrichment, never merged.
	Enrichment *EnrichmentResult `json:"enrichment,omitempty"`
	// SkipReason records why enrichment was skipped, for operator visibility.
	SkipReason string `json:"skipReason,omitempty"`
	// EnrichedAt is when the last successful enrichment completed.
	EnrichedAt time.Time `json:"enrichedAt,omitzero"`

	// CreatedAt is when the lead was captured.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when the lead record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks a soft delete; the zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
