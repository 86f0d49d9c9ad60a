package enrich

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an enrichment job submitted to River.
// The struct is used as the unique key for jobs to prevent duplicate work per
// lead.
type JobArgs struct {
	// LeadID is the lead to enrich, as a UUID string. It is marked as unique
	// so River can enforce one queued job per lead.
	LeadID string `json:"leadId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the enrichment worker.
func (args JobArgs) Kind() string { return "enrich-lead" }

// InsertOpts returns the River options that control how the job is enqueued.
// Uniqueness spans only non-terminal states so an already-enriched lead can be
// queued again; duplicate enqueues for a queued lead collapse into one job.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
