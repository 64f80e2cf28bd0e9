package http

import (
	"net/http"

	"essentia-backend/internal/domain"
)

type organizationRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
	Depth    *int    `json:"depth"`
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.Organization.ListOrganizations(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	noStore(w)
	writeJSON(w, http.StatusOK, map[string]any{"organizations": nonNil(orgs)})
}

func (h *Handler) OrganizationTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.Organization.OrganizationTree(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	noStore(w)
	writeJSON(w, http.StatusOK, map[string]any{"organizations": tree})
}

func (h *Handler) AdminListOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.svc.Organization.AdminListOrganizations(r.Context(), EmailFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"organizations": nonNil(orgs)})
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var req organizationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Depth == nil {
		writeErrorMessage(w, http.StatusBadRequest, "missing fields")
		return
	}
	org := &domain.Organization{Name: req.Name, ParentID: req.ParentID, Depth: *req.Depth}
	if err := h.svc.Organization.CreateOrganization(r.Context(), EmailFromContext(r.Context()), org); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "organization": org})
}

func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Organization.DeleteOrganization(r.Context(), EmailFromContext(r.Context()), r.URL.Query().Get("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func nonNil(orgs []domain.Organization) []domain.Organization {
	if orgs == nil {
		return []domain.Organization{}
	}
	return orgs
}
