package http

import (
	"net/http"
)

type sessionRequest struct {
	IDToken string `json:"idToken"`
}

// CreateSession exchanges an identity provider token for an API access token.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.svc.Session.CreateSession(r.Context(), req.IDToken)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
