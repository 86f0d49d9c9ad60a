package enrich

import (
	"context"

	"flowtrack/internal/resolver"
	"flowtrack/pkg/domain"
)

// NewLead is the caller-supplied payload for capturing a lead.
type NewLead struct {
	Email       string
	Name        string
	CompanyName string
}

//go:generate mockgen -package mockenrich -source=interface.go -destination=mock/mockenrich.go *
type Enricher interface {
	// Enqueue stores a new lead and queues its enrichment.
	Enqueue(ctx context.Context, workspaceID domain.WorkspaceID, lead NewLead) (*domain.Lead, error)
	// Reenqueue queues enrichment for an existing lead, replacing any prior
	// result once the run completes.
	Reenqueue(ctx context.Context, workspaceID domain.WorkspaceID, leadID domain.LeadID) (*domain.Lead, error)
	// EnqueueBulk queues enrichment for every lead in the workspace whose
	// enrichment is pending or failed, up to a fixed batch limit.
	EnqueueBulk(ctx context.Context, workspaceID domain.WorkspaceID) ([]domain.Lead, error)

	// EnrichLead runs the full pipeline for a stored lead and persists the
	// status transitions. Called by the job worker.
	EnrichLead(ctx context.Context, leadID domain.LeadID) error
	// Run executes the pipeline for a literal email/name/company without
	// touching storage. A non-empty skip reason means no result was produced.
	Run(ctx context.Context, email, name, companyName string) (*domain.EnrichmentResult, string)

	Result(ctx context.Context, workspaceID domain.WorkspaceID, leadID domain.LeadID) (*domain.Lead, error)
	WorkspaceLeads(ctx context.Context,
		workspaceID domain.WorkspaceID,
		status domain.EnrichmentStatus,
		cursor string,
		limit uint) ([]domain.Lead, string, error)
	Delete(ctx context.Context, workspaceID domain.WorkspaceID, leadID domain.LeadID) error
}

// DomainResolver determines the organization domain for a lead.
type DomainResolver interface {
	Resolve(ctx context.Context, email, companyName string) resolver.Resolution
}

// IntelCollector gathers DNS intelligence for a domain.
type IntelCollector interface {
	Collect(ctx context.Context, dom string) domain.DNSIntelligence
}

// MailboxVerifier assesses mailbox deliverability.
type MailboxVerifier interface {
	Verify(ctx context.Context, email, dom string, intel domain.DNSIntelligence) domain.EmailEnrichment
}

// WebsiteProfiler profiles the organization's website.
type WebsiteProfiler interface {
	Profile(ctx context.Context, dom, companyName string, intel domain.DNSIntelligence) *domain.CompanyEnrichment
}

// PersonLocator searches for the lead's public profile.
type PersonLocator interface {
	Locate(ctx context.Context, name, companyName string) *domain.PersonEnrichment
}
