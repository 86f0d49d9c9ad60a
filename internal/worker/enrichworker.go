package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"flowtrack/internal/enrich"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/serrors"
)

// EnrichWorker is a River worker that runs the enrichment pipeline for a
// stored lead. Terminal outcomes (skip decisions, leads deleted after being
// queued) cancel the job; everything else is left to River's retry policy up
// to the job's attempt ceiling.
type EnrichWorker struct {
	river.WorkerDefaults[enrich.JobArgs]

	enricher enrich.Enricher
}

// NewEnrichWorker constructs an EnrichWorker using the provided enricher.
func NewEnrichWorker(enricher enrich.Enricher) *EnrichWorker {
	return &EnrichWorker{enricher: enricher}
}

// Work executes a single enrichment job.
func (w *EnrichWorker) Work(ctx context.Context, job *river.Job[enrich.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("leadID", job.Args.LeadID))

	id, err := uuid.Parse(job.Args.LeadID)
	if err != nil {
		// a malformed ID never becomes valid, retrying is pointless
		logger.Error(ctx, "invalid lead ID in job args", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	if err := w.enricher.EnrichLead(ctx, domain.LeadID(id)); err != nil {
		if errors.Is(err, enrich.ErrSkipped) || errors.Is(err, serrors.ErrNotFound) {
			// the run reached a terminal decision; the lead status is already
			// persisted and a retry would only repeat it
			logger.Info(ctx, "enrichment ended without data", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error enriching lead", zap.Error(err))

		return fmt.Errorf("could not enrich lead: %w", err)
	}

	return nil
}
