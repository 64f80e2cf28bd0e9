package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"essentia-backend/internal/logger"
	"essentia-backend/internal/service"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

var errorClasses = []struct {
	class  error
	status int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrNotFound, http.StatusNotFound},
}

// writeError maps service errors to a status code. Anything outside the
// known classes is a 500 and its detail stays in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, c := range errorClasses {
		if errors.Is(err, c.class) {
			message := strings.TrimPrefix(err.Error(), c.class.Error()+": ")
			logger.InfoContext(r.Context(), "Request rejected", "path", r.URL.Path, "status", c.status, "error", err)
			writeErrorMessage(w, c.status, message)
			return
		}
	}

	logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "method", r.Method, "error", err)
	writeErrorMessage(w, http.StatusInternalServerError, "internal error")
}

// decodeJSON reads a JSON body. A malformed body is reported as missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func noStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}
