package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend and are
// atomic with respect to any surrounding transaction when the backend
// supports it.
//
// The boolean return reports whether a job was actually inserted; false means
// an equivalent unique job already exists and the insert was skipped.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments and insertion options.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
