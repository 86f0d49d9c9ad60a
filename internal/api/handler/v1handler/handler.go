// Package v1handler implements the v1 HTTP endpoints for lead capture and
// enrichment.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"flowtrack/internal/enrich"
	"flowtrack/pkg/domain"
	"flowtrack/pkg/logger"
	"flowtrack/pkg/serrors"
)

const DefaultLimit = 20

// Deps are the collaborators the handlers delegate to.
type Deps struct {
	Enricher enrich.Enricher
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Mux returns the route table for the v1 API. Callers mount it under the /v1
// path prefix.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /workspaces/{workspaceID}/leads", h.createLead)
	mux.HandleFunc("GET /workspaces/{workspaceID}/leads", h.listLeads)
	mux.HandleFunc("POST /workspaces/{workspaceID}/leads/enrich/bulk", h.enrichBulk)
	mux.HandleFunc("POST /workspaces/{workspaceID}/leads/{leadID}/enrich", h.enrichLead)
	mux.HandleFunc("GET /workspaces/{workspaceID}/leads/{leadID}/enrichment", h.getEnrichment)
	mux.HandleFunc("DELETE /workspaces/{workspaceID}/leads/{leadID}", h.deleteLead)

	return mux
}

// Lead is the wire representation of a lead.
type Lead struct {
	ID               string                   `json:"id"`
	WorkspaceID      string                   `json:"workspaceId"`
	Email            string                   `json:"email"`
	Name             string                   `json:"name,omitempty"`
	CompanyName      string                   `json:"companyName,omitempty"`
	EnrichmentStatus domain.EnrichmentStatus  `json:"enrichmentStatus"`
	Enrichment       *domain.EnrichmentResult `json:"enrichment,omitempty"`
	SkipReason       string                   `json:"skipReason,omitempty"`
	EnrichedAt       *time.Time               `json:"enrichedAt,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}

// LeadList is a page of leads with an optional cursor for the next page.
type LeadList struct {
	Items      []Lead `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// Enrichment is the wire representation of a lead's enrichment state.
type Enrichment struct {
	Status     domain.EnrichmentStatus  `json:"status"`
	SkipReason string                   `json:"skipReason,omitempty"`
	EnrichedAt *time.Time               `json:"enrichedAt,omitempty"`
	Result     *domain.EnrichmentResult `json:"result,omitempty"`
}

func DomainLeadToV1(in *domain.Lead) Lead {
	out := Lead{
		ID:               uuid.UUID(in.ID).String(),
		WorkspaceID:      uuid.UUID(in.WorkspaceID).String(),
		Email:            in.Email,
		Name:             in.Name,
		CompanyName:      in.CompanyName,
		EnrichmentStatus: in.EnrichmentStatus,
		Enrichment:       in.Enrichment,
		SkipReason:       in.SkipReason,
		CreatedAt:        in.CreatedAt,
		UpdatedAt:        in.UpdatedAt,
	}
	if !in.EnrichedAt.IsZero() {
		t := in.EnrichedAt

		out.EnrichedAt = &t
	}

	return out
}

// CreateLeadRequest is the payload for capturing a new lead.
type CreateLeadRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

func (h *Handler) createLead(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := h.authorizedWorkspace(w, r)
	if !ok {
		return
	}

	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	lead, err := h.deps.Enricher.Enqueue(r.Context(), workspaceID, enrich.NewLead{
		Email:       req.Email,
		Name:        req.Name,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusAccepted, DomainLeadToV1(lead))
}

func (h *Handler) listLeads(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := h.authorizedWorkspace(w, r)
	if !ok {
		return
	}

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := parseLimit(raw)
		if err != nil {
			writeError(w, r, err)

			return
		}
		limit = parsed
	}

	leads, next, err := h.deps.Enricher.WorkspaceLeads(r.Context(),
		workspaceID,
		domain.EnrichmentStatus(r.URL.Query().Get("status")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		writeError(w, r, err)

		return
	}

	items := make([]Lead, 0, len(leads))
	for i := range leads {
		items = append(items, DomainLeadToV1(&leads[i]))
	}

	writeJSON(w, r, http.StatusOK, LeadList{Items: items, NextCursor: next})
}

func (h *Handler) enrichLead(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := h.authorizedWorkspace(w, r)
	if !ok {
		return
	}
	leadID, ok := pathLeadID(w, r)
	if !ok {
		return
	}

	lead, err := h.deps.Enricher.Reenqueue(r.Context(), workspaceID, leadID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusAccepted, DomainLeadToV1(lead))
}

func (h *Handler) enrichBulk(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := h.authorizedWorkspace(w, r)
	if !ok {
		return
	}

	leads, err := h.deps.Enricher.EnqueueBulk(r.Context(), workspaceID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	items := make([]Lead, 0, len(leads))
	for i := range leads {
		items = append(items, DomainLeadToV1(&leads[i]))
	}

	writeJSON(w, r, http.StatusAccepted, LeadList{Items: items})
}

func (h *Handler) getEnrichment(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := h.authorizedWorkspace(w, r)
	if !ok {
		return
	}
	leadID, ok := pathLeadID(w, r)
	if !ok {
		return
	}

	lead, err := h.deps.Enricher.Result(r.Context(), workspaceID, leadID)
	if err != nil {
		writeError(w, r, err)

		return
	}

	out := Enrichment{
		Status:     lead.EnrichmentStatus,
		SkipReason: lead.SkipReason,
		Result:     lead.Enrichment,
	}
	if !lead.EnrichedAt.IsZero() {
		t := lead.EnrichedAt
		out.EnrichedAt = &t
	}

	writeJSON(w, r, http.StatusOK, out)
}

func (h *Handler) deleteLead(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := h.authorizedWorkspace(w, r)
	if !ok {
		return
	}
	leadID, ok := pathLeadID(w, r)
	if !ok {
		return
	}

	if err := h.deps.Enricher.Delete(r.Context(), workspaceID, leadID); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizedWorkspace parses the workspace ID from the path and verifies it
// matches the authenticated token's workspace.
func (h *Handler) authorizedWorkspace(w http.ResponseWriter, r *http.Request) (domain.WorkspaceID, bool) {
	id, err := uuid.Parse(r.PathValue("workspaceID"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid workspace ID"))

		return domain.WorkspaceID{}, false
	}

	workspaceID := domain.WorkspaceID(id)
	if workspaceID != GetWorkspaceIDFromContext(r.Context()) {
		writeError(w, r, serrors.With(serrors.ErrUnauthorized, "token is not valid for this workspace"))

		return domain.WorkspaceID{}, false
	}

	return workspaceID, true
}

func pathLeadID(w http.ResponseWriter, r *http.Request) (domain.LeadID, bool) {
	id, err := uuid.Parse(r.PathValue("leadID"))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid lead ID"))

		return domain.LeadID{}, false
	}

	return domain.LeadID(id), true
}

func parseLimit(raw string) (uint, error) {
	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "invalid limit %q", raw)
	}

	return uint(limit), nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		// do not leak internals
		writeJSON(w, r, status, errorResponse{Error: "internal error"})

		return
	}

	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}
