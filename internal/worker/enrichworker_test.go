package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flowtrack/internal/enrich"
	mockenrich "flowtrack/internal/enrich/mock"
	"flowtrack/internal/worker"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/serrors"
)

func newJob(leadID string) *river.Job[enrich.JobArgs] {
	return &river.Job[enrich.JobArgs]{
		JobRow: &rivertype.JobRow{ID: 1},
		Args:   enrich.JobArgs{LeadID: leadID},
	}
}

func TestEnrichWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	enricher := mockenrich.NewMockEnricher(ctrl)
	w := worker.NewEnrichWorker(enricher)

	id := uuid.New()
	enricher.EXPECT().EnrichLead(gomock.Any(), domain.LeadID(id)).Return(nil)

	require.NoError(t, w.Work(context.Background(), newJob(id.String())))
}

func TestEnrichWorker_Work_SkippedCancelsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	enricher := mockenrich.NewMockEnricher(ctrl)
	w := worker.NewEnrichWorker(enricher)

	id := uuid.New()
	enricher.EXPECT().EnrichLead(gomock.Any(), domain.LeadID(id)).
		Return(serrors.With(enrich.ErrSkipped, "personal domain without company"))

	err := w.Work(context.Background(), newJob(id.String()))
	require.Error(t, err)
	require.ErrorIs(t, err, enrich.ErrSkipped)

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEnrichWorker_Work_LeadGoneCancelsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	enricher := mockenrich.NewMockEnricher(ctrl)
	w := worker.NewEnrichWorker(enricher)

	id := uuid.New()
	enricher.EXPECT().EnrichLead(gomock.Any(), domain.LeadID(id)).
		Return(serrors.With(serrors.ErrNotFound, "lead not found"))

	err := w.Work(context.Background(), newJob(id.String()))

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEnrichWorker_Work_MalformedLeadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	enricher := mockenrich.NewMockEnricher(ctrl)
	w := worker.NewEnrichWorker(enricher)

	// no enricher call expected
	err := w.Work(context.Background(), newJob("not-a-uuid"))

	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestEnrichWorker_Work_TransientErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	enricher := mockenrich.NewMockEnricher(ctrl)
	w := worker.NewEnrichWorker(enricher)

	id := uuid.New()
	enricher.EXPECT().EnrichLead(gomock.Any(), domain.LeadID(id)).
		Return(errors.New("db connection lost"))

	err := w.Work(context.Background(), newJob(id.String()))
	require.Error(t, err)

	// transient failures are returned as-is so river retries them
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}
