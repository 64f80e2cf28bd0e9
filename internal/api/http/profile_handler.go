package http

import (
	"net/http"
)

type profileRequest struct {
	Name  string `json:"name"`
	Birth string `json:"birth"`
	Sex   string `json:"sex"`
}

// GetProfile returns {"member": null} until the caller has saved a profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.Profile.GetProfile(r.Context(), EmailFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	noStore(w)
	if profile == nil {
		writeJSON(w, http.StatusOK, map[string]any{"member": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"member": profile})
}

func (h *Handler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user, err := h.svc.Profile.UpsertProfile(r.Context(), EmailFromContext(r.Context()), req.Name, req.Birth, req.Sex)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "user": user})
}

func (h *Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.svc.Upload.UploadProfileImage(r.Context(), EmailFromContext(r.Context()), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{OK: true, UploadResult: result})
}
