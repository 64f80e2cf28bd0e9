package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"essentia-backend/internal/service"
)

// mailRequest is the union of the application endpoints' bodies. The legacy
// /api/mail endpoint selects the operation with Type.
type mailRequest struct {
	Type        string `json:"type"`
	School      string `json:"school"`
	Intro       string `json:"intro"`
	Motivation  string `json:"motivation"`
	Agreed      bool   `json:"agreed"`
	Choices     []any  `json:"choices"`
	UserID      string `json:"userId"`
	InterviewAt string `json:"interviewAt"`
}

// choiceSlots keeps the first three entries; non-string entries count as blank.
func (m mailRequest) choiceSlots() [3]string {
	var slots [3]string
	for i := 0; i < len(slots) && i < len(m.Choices); i++ {
		if s, ok := m.Choices[i].(string); ok {
			slots[i] = strings.TrimSpace(s)
		}
	}
	return slots
}

func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.submitApplication(w, r, req)
}

func (h *Handler) submitApplication(w http.ResponseWriter, r *http.Request, req mailRequest) {
	result, err := h.svc.Applicant.Apply(r.Context(), EmailFromContext(r.Context()), service.ApplicationRequest{
		School:     req.School,
		Intro:      req.Intro,
		Motivation: req.Motivation,
		Agreed:     req.Agreed,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "alreadyApplied": result.AlreadyApplied, "status": result.Status})
}

func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.Applicant.GetProgress(r.Context(), EmailFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	noStore(w)
	writeJSON(w, http.StatusOK, progress)
}

func (h *Handler) SubmitInterviewChoices(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.submitInterviewChoices(w, r, req)
}

func (h *Handler) submitInterviewChoices(w http.ResponseWriter, r *http.Request, req mailRequest) {
	if err := h.svc.Applicant.SubmitInterviewChoices(r.Context(), EmailFromContext(r.Context()), req.choiceSlots()); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w)
}

func (h *Handler) SendInterviewNotice(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.sendInterviewNotice(w, r, req)
}

func (h *Handler) sendInterviewNotice(w http.ResponseWriter, r *http.Request, req mailRequest) {
	at, err := h.svc.Applicant.SendInterviewNotice(r.Context(), EmailFromContext(r.Context()), req.UserID, req.InterviewAt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "interviewAt": at})
}

func (h *Handler) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	at, err := h.svc.Applicant.ScheduleInterview(r.Context(), EmailFromContext(r.Context()), mux.Vars(r)["id"], req.InterviewAt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "interviewAt": at})
}

// DispatchMail serves the combined endpoint older clients post to.
func (h *Handler) DispatchMail(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	switch strings.TrimSpace(req.Type) {
	case "apply":
		h.submitApplication(w, r, req)
	case "interview":
		h.submitInterviewChoices(w, r, req)
	case "interview_notice":
		h.sendInterviewNotice(w, r, req)
	default:
		writeErrorMessage(w, http.StatusBadRequest, "invalid type")
	}
}
