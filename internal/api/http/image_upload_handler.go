package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"essentia-backend/internal/logger"
	"essentia-backend/internal/storage"
)

// ImageUploadHandler serves objects written by the local filesystem store,
// standing in for the bucket CDN during development.
type ImageUploadHandler struct {
	localStorage *storage.MockStorageService
}

func NewImageUploadHandler(localStorage *storage.MockStorageService) *ImageUploadHandler {
	return &ImageUploadHandler{
		localStorage: localStorage,
	}
}

// HandleDownload streams /uploads/{bucket}/{key}.
func (h *ImageUploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	file, contentType, err := h.localStorage.Open(vars["bucket"], vars["key"])
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Invalid object key", http.StatusBadRequest)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if _, err := io.Copy(w, file); err != nil {
		logger.WarnContext(r.Context(), "Failed to stream upload", "bucket", vars["bucket"], "key", vars["key"], "error", err)
	}
}

// RegisterLocalStorageRoutes exposes the local store under /uploads/.
func RegisterLocalStorageRoutes(router *mux.Router, localStorage *storage.MockStorageService) {
	handler := NewImageUploadHandler(localStorage)
	router.HandleFunc("/uploads/{bucket}/{key:.+}", handler.HandleDownload).Methods(http.MethodGet).Name("ops.uploads")
}
