package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"flowtrack/internal/api/handler/v1handler"
	"flowtrack/internal/enrich"
	mockenrich "flowtrack/internal/enrich/mock"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/serrors"
)

type apiFixture struct {
	enricher    *mockenrich.MockEnricher
	handler     http.Handler
	workspaceID domain.WorkspaceID
	token       string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &apiFixture{
		enricher:    mockenrich.NewMockEnricher(ctrl),
		workspaceID: domain.WorkspaceID(uuid.New()),
	}

	sec := newSecHandler(t, time.Hour)
	token, err := sec.MintToken(f.workspaceID)
	require.NoError(t, err)
	f.token = token

	h := v1handler.New(v1handler.Deps{Enricher: f.enricher})
	f.handler = sec.Middleware(h.Mux())

	return f
}

func (f *apiFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func (f *apiFixture) workspacePath(suffix string) string {
	return "/workspaces/" + uuid.UUID(f.workspaceID).String() + suffix
}

func TestCreateLead(t *testing.T) {
	f := newAPIFixture(t)
	leadID := domain.LeadID(uuid.New())

	f.enricher.EXPECT().
		Enqueue(gomock.Any(), f.workspaceID, enrich.NewLead{
			Email:       "jane@acme.com",
			Name:        "Jane Doe",
			CompanyName: "Acme",
		}).
		Return(&domain.Lead{
			ID:               leadID,
			WorkspaceID:      f.workspaceID,
			Email:            "jane@acme.com",
			EnrichmentStatus: domain.EnrichmentStatusPending,
		}, nil)

	rec := f.do(t, http.MethodPost, f.workspacePath("/leads"),
		`{"email":"jane@acme.com","name":"Jane Doe","companyName":"Acme"}`)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var lead v1handler.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	require.Equal(t, uuid.UUID(leadID).String(), lead.ID)
	require.Equal(t, domain.EnrichmentStatusPending, lead.EnrichmentStatus)
}

func TestCreateLead_InvalidBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, f.workspacePath("/leads"), "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLead_WorkspaceMismatch(t *testing.T) {
	f := newAPIFixture(t)

	path := "/workspaces/" + uuid.NewString() + "/leads"
	rec := f.do(t, http.MethodPost, path, `{"email":"jane@acme.com"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListLeads(t *testing.T) {
	f := newAPIFixture(t)

	f.enricher.EXPECT().
		WorkspaceLeads(gomock.Any(), f.workspaceID, domain.EnrichmentStatusCompleted, "", uint(5)).
		Return([]domain.Lead{{Email: "a@acme.com"}}, "2026-01-02T03:04:05Z", nil)

	rec := f.do(t, http.MethodGet, f.workspacePath("/leads?status=COMPLETED&limit=5"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list v1handler.LeadList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	require.Equal(t, "a@acme.com", list.Items[0].Email)
	require.Equal(t, "2026-01-02T03:04:05Z", list.NextCursor)
}

func TestListLeads_DefaultLimit(t *testing.T) {
	f := newAPIFixture(t)

	f.enricher.EXPECT().
		WorkspaceLeads(gomock.Any(), f.workspaceID, domain.EnrichmentStatus(""), "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)

	rec := f.do(t, http.MethodGet, f.workspacePath("/leads"), "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListLeads_InvalidLimit(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, f.workspacePath("/leads?limit=zero"), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrichLead(t *testing.T) {
	f := newAPIFixture(t)
	leadID := domain.LeadID(uuid.New())

	f.enricher.EXPECT().
		Reenqueue(gomock.Any(), f.workspaceID, leadID).
		Return(&domain.Lead{ID: leadID, EnrichmentStatus: domain.EnrichmentStatusPending}, nil)

	rec := f.do(t, http.MethodPost, f.workspacePath("/leads/"+uuid.UUID(leadID).String()+"/enrich"), "")
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestEnrichLead_NotFound(t *testing.T) {
	f := newAPIFixture(t)
	leadID := domain.LeadID(uuid.New())

	f.enricher.EXPECT().
		Reenqueue(gomock.Any(), f.workspaceID, leadID).
		Return(nil, serrors.With(serrors.ErrNotFound, "lead not found"))

	rec := f.do(t, http.MethodPost, f.workspacePath("/leads/"+uuid.UUID(leadID).String()+"/enrich"), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnrichBulk(t *testing.T) {
	f := newAPIFixture(t)

	f.enricher.EXPECT().
		EnqueueBulk(gomock.Any(), f.workspaceID).
		Return([]domain.Lead{{Email: "a@acme.com"}, {Email: "b@acme.com"}}, nil)

	rec := f.do(t, http.MethodPost, f.workspacePath("/leads/enrich/bulk"), "")
	require.Equal(t, http.StatusAccepted, rec.Code)

	var list v1handler.LeadList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 2)
}

func TestGetEnrichment(t *testing.T) {
	f := newAPIFixture(t)
	leadID := domain.LeadID(uuid.New())
	enrichedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	f.enricher.EXPECT().
		Result(gomock.Any(), f.workspaceID, leadID).
		Return(&domain.Lead{
			ID:               leadID,
			EnrichmentStatus: domain.EnrichmentStatusCompleted,
			EnrichedAt:       enrichedAt,
			Enrichment: &domain.EnrichmentResult{
				Version: domain.EnrichmentVersion,
				Company: &domain.CompanyEnrichment{Name: "Acme", Domain: "acme.com"},
			},
		}, nil)

	rec := f.do(t, http.MethodGet, f.workspacePath("/leads/"+uuid.UUID(leadID).String()+"/enrichment"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out v1handler.Enrichment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, domain.EnrichmentStatusCompleted, out.Status)
	require.NotNil(t, out.EnrichedAt)
	require.NotNil(t, out.Result)
	require.Equal(t, "acme.com", out.Result.Company.Domain)
}

func TestGetEnrichment_Skipped(t *testing.T) {
	f := newAPIFixture(t)
	leadID := domain.LeadID(uuid.New())

	f.enricher.EXPECT().
		Result(gomock.Any(), f.workspaceID, leadID).
		Return(&domain.Lead{
			ID:               leadID,
			EnrichmentStatus: domain.EnrichmentStatusSkipped,
			SkipReason:       "Invalid email format - no domain found",
		}, nil)

	rec := f.do(t, http.MethodGet, f.workspacePath("/leads/"+uuid.UUID(leadID).String()+"/enrichment"), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out v1handler.Enrichment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, domain.EnrichmentStatusSkipped, out.Status)
	require.NotEmpty(t, out.SkipReason)
	require.Nil(t, out.Result)
}

func TestDeleteLead(t *testing.T) {
	f := newAPIFixture(t)
	leadID := domain.LeadID(uuid.New())

	f.enricher.EXPECT().Delete(gomock.Any(), f.workspaceID, leadID).Return(nil)

	rec := f.do(t, http.MethodDelete, f.workspacePath("/leads/"+uuid.UUID(leadID).String()), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteLead_InvalidID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodDelete, f.workspacePath("/leads/not-a-uuid"), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
