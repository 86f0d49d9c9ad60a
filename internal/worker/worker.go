// Package worker runs the background enrichment jobs on River.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"flowtrack/internal/config"
	"flowtrack/internal/enrich"
	"flowtrack/pkg/logger"
)

// Options configure the job queue client.
type Options struct {
	// QueueConcurrency is the number of enrichment jobs processed in parallel.
	// It is kept low so a burst of leads does not hammer target mail and web
	// servers.
	QueueConcurrency int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		QueueConcurrency: cfg.Enrichment.QueueConcurrency,
	}
}

// Start registers the enrichment worker and starts the River client on the
// default queue. The returned client must be stopped by the caller during
// shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, enricher enrich.Enricher, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewEnrichWorker(enricher))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.QueueConcurrency},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
