// Package enrich implements the enrichment orchestrator: it sequences domain
// resolution, DNS intelligence, mailbox verification, website profiling and
// person location into one run per lead, persists the lifecycle transitions
// and manages the background job queue.
package enrich

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"flowtrack/internal/config"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/metrics"
	"flowtrack/pkg/serrors"
	"flowtrack/pkg/storage"
)

// ErrSkipped classifies enrichment runs that ended with a recorded skip
// decision. The job worker cancels rather than retries these.
var ErrSkipped = serrors.NewKind("ENRICHMENT_SKIPPED") //nolint: gochecknoglobals

// bulkEnqueueLimit caps how many leads a single bulk request queues.
const bulkEnqueueLimit = 100

// Options configure how enrichment jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing an enrichment job before marking it failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Enrichment.MaxAttempts,
	}
}

// Deps are the pipeline components the orchestrator sequences.
type Deps struct {
	Resolver  DomainResolver
	Collector IntelCollector
	Verifier  MailboxVerifier
	Profiler  WebsiteProfiler
	Locator   PersonLocator
}

// enricher is the concrete implementation of the Enricher interface. It
// coordinates persistence with the storage layer and job enqueueing.
type enricher struct {
	options Options
	deps    Deps
	storage storage.Storage

	runCounter  metric.Int64Counter
	runDuration metric.Float64Histogram
}

// New creates a new Enricher backed by the provided storage and pipeline
// components.
func New(st storage.Storage, deps Deps, options Options) (Enricher, error) {
	meter := otel.Meter("flowtrack/internal/enrich")

	runCounter, err := meter.Int64Counter("enrichment_runs_total",
		metric.WithDescription("Completed enrichment runs by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create run counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("enrichment_run_duration_seconds",
		metric.WithDescription("Duration of enrichment runs"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create run duration histogram: %w", err)
	}

	return &enricher{
		options:     options,
		deps:        deps,
		storage:     st,
		runCounter:  runCounter,
		runDuration: runDuration,
	}, nil
}

// Enqueue stores a new lead in PENDING state and queues its enrichment job in
// the same transaction, so a stored lead is never silently left without a job.
func (e *enricher) Enqueue(ctx context.Context, workspaceID domain.WorkspaceID, lead NewLead) (*domain.Lead, error) {
	if lead.Email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email is required")
	}

	var stored *domain.Lead
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreLeads(ctx, domain.Lead{
			WorkspaceID:      workspaceID,
			Email:            lead.Email,
			Name:             lead.Name,
			CompanyName:      lead.CompanyName,
			EnrichmentStatus: domain.EnrichmentStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store lead: %w", err)
		}
		stored = &res[0]

		if err := e.addJob(ctx, tx, stored.ID); err != nil {
			return err
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue lead: %w", err)
	}

	return stored, nil
}

// Reenqueue resets an existing lead to PENDING and queues a new enrichment
// job. A job already queued for the lead collapses into the existing one.
func (e *enricher) Reenqueue(ctx context.Context, workspaceID domain.WorkspaceID, leadID domain.LeadID) (*domain.Lead, error) {
	lead, err := e.storage.LeadByID(ctx, workspaceID, leadID)
	if err != nil {
		return nil, fmt.Errorf("could not get lead: %w", err)
	}
	if lead == nil {
		return nil, serrors.With(serrors.ErrNotFound, "lead not found")
	}

	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateLeadByID(ctx, leadID, storage.LeadUpdates{
			EnrichmentStatus: domain.EnrichmentStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not update lead: %w", err)
		}
		lead = updated

		return e.addJob(ctx, tx, leadID)
	}); err != nil {
		return nil, fmt.Errorf("could not reenqueue lead: %w", err)
	}

	return lead, nil
}

// EnqueueBulk queues enrichment for every lead in the workspace whose
// enrichment is PENDING or FAILED, oldest first, up to the batch limit.
func (e *enricher) EnqueueBulk(ctx context.Context, workspaceID domain.WorkspaceID) ([]domain.Lead, error) {
	leads, err := e.storage.LeadsNeedingEnrichment(ctx, workspaceID, bulkEnqueueLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get leads needing enrichment: %w", err)
	}

	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		for _, lead := range leads {
			if err := e.addJob(ctx, tx, lead.ID); err != nil {
				return err
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue leads: %w", err)
	}

	return leads, nil
}

func (e *enricher) addJob(ctx context.Context, tx storage.AllStorage, leadID domain.LeadID) error {
	// jobAdded is false when a job for this lead is already queued; river
	// unique jobs collapse duplicate enqueues, which is the desired outcome.
	if _, err := tx.AddJob(ctx, JobArgs{
		LeadID:      uuid.UUID(leadID).String(),
		maxAttempts: e.options.MaxAttempts,
	}, nil); err != nil {
		return fmt.Errorf("could not add job: %w", err)
	}

	return nil
}

// EnrichLead runs the pipeline for a stored lead. The lead ends in exactly
// one of COMPLETED, SKIPPED or FAILED; it is never left PROCESSING unless
// persistence itself fails, in which case the returned error drives a retry.
func (e *enricher) EnrichLead(ctx context.Context, leadID domain.LeadID) error {
	start := time.Now()

	lead, err := e.storage.GetLead(ctx, leadID)
	if err != nil {
		return fmt.Errorf("could not get lead: %w", err)
	}
	if lead == nil {
		// deleted after being queued; nothing to do
		return serrors.With(serrors.ErrNotFound, "lead not found")
	}

	if _, err := e.storage.UpdateLeadByID(ctx, leadID, storage.LeadUpdates{
		EnrichmentStatus: domain.EnrichmentStatusProcessing,
	}); err != nil {
		return fmt.Errorf("could not mark lead processing: %w", err)
	}

	result, skipReason := e.Run(ctx, lead.Email, lead.Name, lead.CompanyName)
	if skipReason != "" {
		if _, err := e.storage.UpdateLeadByID(ctx, leadID, storage.LeadUpdates{
			EnrichmentStatus: domain.EnrichmentStatusSkipped,
			SkipReason:       &skipReason,
		}); err != nil {
			return fmt.Errorf("could not mark lead skipped: %w", err)
		}
		e.observeRun(ctx, start, "skipped")

		return serrors.With(ErrSkipped, "%s", skipReason)
	}

	now := time.Now().UTC()
	result.EnrichedAt = now

	noSkip := ""
	if _, err := e.storage.UpdateLeadByID(ctx, leadID, storage.LeadUpdates{
		EnrichmentStatus: domain.EnrichmentStatusCompleted,
		Enrichment:       result,
		SkipReason:       &noSkip,
		EnrichedAt:       &now,
	}); err != nil {
		// best effort; the job retry will restart from PROCESSING
		e.markFailed(ctx, leadID)
		e.observeRun(ctx, start, "failed")

		return fmt.Errorf("could not persist enrichment result: %w", err)
	}

	e.observeRun(ctx, start, "completed")
	logger.Info(ctx, "lead enriched",
		zap.String("domain", result.RawData.EnrichedDomain),
		zap.Duration("took", time.Since(start)))

	return nil
}

// Run executes the pipeline without touching storage. Sub-component failures
// resolve to empty sections, so a run either skips or produces a result.
func (e *enricher) Run(ctx context.Context, email, name, companyName string) (*domain.EnrichmentResult, string) {
	res := e.deps.Resolver.Resolve(ctx, email, companyName)
	if res.SkipReason != "" {
		return nil, res.SkipReason
	}

	intel := e.deps.Collector.Collect(ctx, res.Domain)

	// the three sections are independent of each other
	var (
		wg      sync.WaitGroup
		mail    domain.EmailEnrichment
		company *domain.CompanyEnrichment
		person  *domain.PersonEnrichment
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		mail = e.deps.Verifier.Verify(ctx, email, res.Domain, intel)
	}()
	go func() {
		defer wg.Done()
		company = e.deps.Profiler.Profile(ctx, res.Domain, companyName, intel)
	}()
	go func() {
		defer wg.Done()
		person = e.deps.Locator.Locate(ctx, name, companyName)
	}()
	wg.Wait()

	return &domain.EnrichmentResult{
		Version: domain.EnrichmentVersion,
		Company: company,
		Person:  person,
		Email:   &mail,
		RawData: domain.EnrichmentRawData{
			DNS:                 intel,
			UsedFallback:        res.UsedFallback,
			FallbackReason:      res.FallbackReason,
			OriginalEmailDomain: res.OriginalDomain,
			EnrichedDomain:      res.Domain,
		},
	}, ""
}

func (e *enricher) markFailed(ctx context.Context, leadID domain.LeadID) {
	if _, err := e.storage.UpdateLeadByID(ctx, leadID, storage.LeadUpdates{
		EnrichmentStatus: domain.EnrichmentStatusFailed,
	}); err != nil {
		logger.Error(ctx, "could not mark lead failed", zap.Error(err))
	}
}

func (e *enricher) observeRun(ctx context.Context, start time.Time, outcome string) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	e.runCounter.Add(ctx, 1, attrs)
	e.runDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// Result fetches a single lead by ID for the given workspace. It returns a
// not-found error when no matching lead exists.
func (e *enricher) Result(ctx context.Context, workspaceID domain.WorkspaceID, leadID domain.LeadID) (*domain.Lead, error) {
	lead, err := e.storage.LeadByID(ctx, workspaceID, leadID)
	if err != nil {
		return nil, fmt.Errorf("could not get lead: %w", err)
	}
	if lead == nil {
		return nil, serrors.With(serrors.ErrNotFound, "lead not found")
	}

	return lead, nil
}

// WorkspaceLeads returns a page of leads for the given workspace filtered by
// status. It supports cursor-based pagination using an RFC3339 timestamp
// string and returns the next cursor when more results are available.
func (e *enricher) WorkspaceLeads(ctx context.Context,
	workspaceID domain.WorkspaceID,
	status domain.EnrichmentStatus,
	cursor string,
	limit uint) ([]domain.Lead, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := e.storage.WorkspaceLeads(ctx, workspaceID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get workspace leads: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Leads, next, nil
}

// Delete removes a lead belonging to the given workspace. If the lead does
// not exist, a not-found error is returned. A queued job for the lead is not
// cancelled; the worker detects the missing lead and gives up.
func (e *enricher) Delete(ctx context.Context, workspaceID domain.WorkspaceID, leadID domain.LeadID) error {
	lead, err := e.storage.DeleteLead(ctx, workspaceID, leadID)
	if err != nil {
		return fmt.Errorf("could not delete lead: %w", err)
	}
	if lead == nil {
		return serrors.With(serrors.ErrNotFound, "lead not found")
	}

	return nil
}
