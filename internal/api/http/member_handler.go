package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"essentia-backend/internal/service"
)

// memberPatch keeps org raw so null, string and anything else can be told apart.
type memberPatch struct {
	ID              string          `json:"id"`
	President       json.RawMessage `json:"president"`
	Org             json.RawMessage `json:"org"`
	ApplicantStatus json.RawMessage `json:"applicantStatus"`
}

func (p memberPatch) toUpdate() (service.MemberUpdate, error) {
	update := service.MemberUpdate{UserID: p.ID}

	var president bool
	if len(p.President) > 0 && json.Unmarshal(p.President, &president) == nil {
		update.President = &president
	}

	if len(p.Org) > 0 {
		update.OrgSet = true
		if !bytes.Equal(bytes.TrimSpace(p.Org), []byte("null")) {
			var org string
			if err := json.Unmarshal(p.Org, &org); err != nil {
				return service.MemberUpdate{}, service.ErrInvalidOrg
			}
			update.Org = &org
		}
	}

	var status string
	if len(p.ApplicantStatus) > 0 && json.Unmarshal(p.ApplicantStatus, &status) == nil {
		update.ApplicantStatus = &status
	}
	return update, nil
}

func (h *Handler) ListRoster(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.Member.ListRoster(r.Context(), EmailFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	noStore(w)
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var patch memberPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	update, err := patch.toUpdate()
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.Member.UpdateMember(r.Context(), EmailFromContext(r.Context()), update); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Member.DeleteMember(r.Context(), EmailFromContext(r.Context()), r.URL.Query().Get("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

// Directory is the public member list.
func (h *Handler) Directory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Member.Directory(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	noStore(w)
	writeJSON(w, http.StatusOK, map[string]any{"members": entries})
}
