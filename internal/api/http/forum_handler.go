package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"essentia-backend/internal/domain"
)

type postRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type commentRequest struct {
	Content string `json:"content"`
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

// queryInt returns the positive integer value of key, or 0.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Forum.ListPosts(r.Context(), domain.PostFilter{
		Category: r.URL.Query().Get("category"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Forum.GetPost(r.Context(), EmailFromContext(r.Context()), pathID(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"post": view.ForumPost, "canEdit": view.CanEdit, "canDelete": view.CanDelete})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post := &domain.ForumPost{Title: req.Title, Content: req.Content, Category: req.Category}
	if err := h.svc.Forum.CreatePost(r.Context(), EmailFromContext(r.Context()), post); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": post.ID})
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	post := &domain.ForumPost{ID: pathID(r, "id"), Title: req.Title, Content: req.Content, Category: req.Category}
	if err := h.svc.Forum.UpdatePost(r.Context(), EmailFromContext(r.Context()), post); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Forum.DeletePost(r.Context(), EmailFromContext(r.Context()), pathID(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.Forum.ListComments(r.Context(), EmailFromContext(r.Context()), pathID(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": comments})
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	comment, err := h.svc.Forum.CreateComment(r.Context(), EmailFromContext(r.Context()), pathID(r, "id"), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "comment": comment})
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.Forum.UpdateComment(r.Context(), EmailFromContext(r.Context()), pathID(r, "commentId"), req.Content); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Forum.DeleteComment(r.Context(), EmailFromContext(r.Context()), pathID(r, "commentId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}
