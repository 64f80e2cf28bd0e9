package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"essentia-backend/internal/security"
	"essentia-backend/internal/service"
	"essentia-backend/internal/storage"
)

// Services bundles what the JSON API calls into.
type Services struct {
	Session      service.SessionService
	Applicant    service.ApplicantService
	Member       service.MemberService
	Profile      service.ProfileService
	Organization service.OrganizationService
	Forum        service.ForumService
	Upload       service.UploadService
}

// Options configures the router beyond the services.
type Options struct {
	Tokens security.TokenManager
	// Ping reports database health for /healthz.
	Ping func(ctx context.Context) error
	// LocalStorage is set when uploads live on the local filesystem and
	// must be served by this process.
	LocalStorage *storage.MockStorageService
	// Upload size caps for multipart parsing, in bytes.
	MaxUploadBytes int64
}

type Handler struct {
	svc  Services
	opts Options
}

// NewRouter wires every route under its security name.
func NewRouter(svc Services, opts Options) *mux.Router {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	h := &Handler{svc: svc, opts: opts}
	auth := NewAuthMiddleware(opts.Tokens)

	router := mux.NewRouter()
	router.Use(requestIDMiddleware, metricsMiddleware, auth.Handler)

	router.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet).Name("ops.healthz")
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet).Name("ops.metrics")
	if opts.LocalStorage != nil {
		RegisterLocalStorageRoutes(router, opts.LocalStorage)
	}

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/session", h.CreateSession).Methods(http.MethodPost).Name("auth.session")

	api.HandleFunc("/me", h.GetProfile).Methods(http.MethodGet).Name("me.get")
	api.HandleFunc("/me", h.UpsertProfile).Methods(http.MethodPost).Name("me.upsert")
	api.HandleFunc("/me/profile-image", h.UploadProfileImage).Methods(http.MethodPost).Name("me.profileImage")

	api.HandleFunc("/applications", h.SubmitApplication).Methods(http.MethodPost).Name("applications.submit")
	api.HandleFunc("/applications/progress", h.GetProgress).Methods(http.MethodGet).Name("applications.progress")
	api.HandleFunc("/applications/interview-choices", h.SubmitInterviewChoices).Methods(http.MethodPost).Name("applications.interviewChoices")
	api.HandleFunc("/mail", h.DispatchMail).Methods(http.MethodPost).Name("mail.dispatch")

	api.HandleFunc("/members", h.Directory).Methods(http.MethodGet).Name("members.directory")
	api.HandleFunc("/organizations", h.ListOrganizations).Methods(http.MethodGet).Name("organizations.list")
	api.HandleFunc("/organizations/tree", h.OrganizationTree).Methods(http.MethodGet).Name("organizations.tree")

	api.HandleFunc("/forum", h.ListPosts).Methods(http.MethodGet).Name("forum.list")
	api.HandleFunc("/forum", h.CreatePost).Methods(http.MethodPost).Name("forum.create")
	api.HandleFunc("/forum/upload", h.UploadForumImage).Methods(http.MethodPost).Name("forum.upload")
	api.HandleFunc("/forum/comments/{commentId:[0-9]+}", h.UpdateComment).Methods(http.MethodPatch).Name("forum.comments.update")
	api.HandleFunc("/forum/comments/{commentId:[0-9]+}", h.DeleteComment).Methods(http.MethodDelete).Name("forum.comments.delete")
	api.HandleFunc("/forum/{id:[0-9]+}", h.GetPost).Methods(http.MethodGet).Name("forum.get")
	api.HandleFunc("/forum/{id:[0-9]+}", h.UpdatePost).Methods(http.MethodPatch).Name("forum.update")
	api.HandleFunc("/forum/{id:[0-9]+}", h.DeletePost).Methods(http.MethodDelete).Name("forum.delete")
	api.HandleFunc("/forum/{id:[0-9]+}/comments", h.ListComments).Methods(http.MethodGet).Name("forum.comments.list")
	api.HandleFunc("/forum/{id:[0-9]+}/comments", h.CreateComment).Methods(http.MethodPost).Name("forum.comments.create")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/members", h.ListRoster).Methods(http.MethodGet).Name("admin.members.list")
	admin.HandleFunc("/members", h.UpdateMember).Methods(http.MethodPatch).Name("admin.members.update")
	admin.HandleFunc("/members", h.DeleteMember).Methods(http.MethodDelete).Name("admin.members.delete")
	admin.HandleFunc("/applicants/{id}/interview", h.ScheduleInterview).Methods(http.MethodPut).Name("admin.applicants.interview")
	admin.HandleFunc("/interview-notices", h.SendInterviewNotice).Methods(http.MethodPost).Name("admin.interviewNotices.send")
	admin.HandleFunc("/organizations", h.AdminListOrganizations).Methods(http.MethodGet).Name("admin.organizations.list")
	admin.HandleFunc("/organizations", h.CreateOrganization).Methods(http.MethodPost).Name("admin.organizations.create")
	admin.HandleFunc("/organizations", h.DeleteOrganization).Methods(http.MethodDelete).Name("admin.organizations.delete")

	return router
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if h.opts.Ping != nil {
		if err := h.opts.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
