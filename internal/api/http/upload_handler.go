package http

import (
	"net/http"

	"essentia-backend/internal/service"
)

const multipartMemory = 8 << 20

type uploadResponse struct {
	OK bool `json:"ok"`
	*service.UploadResult
}

// readUpload extracts the "file" part of a multipart form. The caller must
// run cleanup once the body has been consumed.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (service.Upload, func(), bool) {
	// Allow some headroom over the file cap for the multipart envelope so the
	// service reports the size error rather than the parser.
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "image file is required")
		return service.Upload{}, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "image file is required")
		return service.Upload{}, nil, false
	}

	cleanup := func() {
		file.Close()
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}

	return service.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, cleanup, true
}

func (h *Handler) UploadForumImage(w http.ResponseWriter, r *http.Request) {
	upload, cleanup, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.svc.Upload.UploadForumImage(r.Context(), EmailFromContext(r.Context()), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, uploadResponse{OK: true, UploadResult: result})
}
