package storage

import (
	"context"
	"time"

	"flowtrack/pkg/domain"
)

// LeadUpdates describes the optional fields applied to a lead during an
// update. Zero/nil fields are left unchanged unless documented otherwise.
type LeadUpdates struct {
	// EnrichmentStatus, when non-empty, is the new enrichment lifecycle state.
	EnrichmentStatus domain.EnrichmentStatus
	// Enrichment, when non-nil, replaces the stored enrichment result
	// wholesale. Prior result fields are never merged.
	Enrichment *domain.EnrichmentResult
	// SkipReason, when non-nil, sets the skip reason text. An empty string
	// clears it.
	SkipReason *string
	// EnrichedAt, when non-nil, records when the last enrichment completed.
	EnrichedAt *time.Time
}

// LeadPage groups a page of leads with an optional cursor for the next page.
type LeadPage struct {
	// Leads is the current page.
	Leads []domain.Lead
	// NextCursor is the created-at timestamp to request the next page with,
	// or nil when this is the last page.
	NextCursor *time.Time
}

// LeadStorage defines persistence operations for leads and their enrichment
// lifecycle. Soft-deleted rows are invisible to every method.
type LeadStorage interface {
	// StoreLeads inserts one or more leads and returns the stored rows
	// including generated fields.
	StoreLeads(ctx context.Context, leads ...domain.Lead) ([]domain.Lead, error)

	// LeadByID fetches a lead by ID scoped to a workspace. Returns nil when
	// not found.
	LeadByID(ctx context.Context, workspaceID domain.WorkspaceID, id domain.LeadID) (*domain.Lead, error)

	// GetLead fetches a lead by ID without workspace scoping. Used by workers,
	// which receive the lead ID from the job payload.
	GetLead(ctx context.Context, id domain.LeadID) (*domain.Lead, error)

	// UpdateLeadByID applies updates to a single lead and returns the updated
	// row, or nil when the lead does not exist. updated_at is set automatically.
	UpdateLeadByID(ctx context.Context, id domain.LeadID, updates LeadUpdates) (*domain.Lead, error)

	// LeadsNeedingEnrichment returns up to limit leads in the workspace whose
	// enrichment is PENDING or FAILED, oldest first.
	LeadsNeedingEnrichment(ctx context.Context, workspaceID domain.WorkspaceID, limit uint) ([]domain.Lead, error)

	// WorkspaceLeads returns a page of leads for the workspace created before
	// the optional cursor time. When status is non-empty, only leads with that
	// enrichment status are returned.
	WorkspaceLeads(ctx context.Context,
		workspaceID domain.WorkspaceID,
		status domain.EnrichmentStatus,
		cursor time.Time,
		limit uint) (LeadPage, error)

	// DeleteLead soft-deletes a lead scoped to a workspace and returns the
	// deleted row, or nil when it was not found.
	DeleteLead(ctx context.Context, workspaceID domain.WorkspaceID, id domain.LeadID) (*domain.Lead, error)
}
