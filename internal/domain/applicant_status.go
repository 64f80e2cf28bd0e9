package domain

import (
	"regexp"
	"strings"
)

// ApplicantStatus is a lifecycle state. Values outside the seven canonical
// states can appear when legacy rows hold free text; they are carried opaquely.
type ApplicantStatus string

const (
	StatusNone               ApplicantStatus = ""
	StatusSubmitted          ApplicantStatus = "submitted"
	StatusDocPassed          ApplicantStatus = "doc_passed"
	StatusInterviewScheduled ApplicantStatus = "interview_scheduled"
	StatusInterview          ApplicantStatus = "interview"
	StatusInterviewDone      ApplicantStatus = "interview_done"
	StatusFinalPassed        ApplicantStatus = "final_passed"
	StatusRejected           ApplicantStatus = "rejected"
)

// CanonicalStatuses lists the lifecycle states in pipeline order.
var CanonicalStatuses = []ApplicantStatus{
	StatusSubmitted,
	StatusDocPassed,
	StatusInterviewScheduled,
	StatusInterview,
	StatusInterviewDone,
	StatusFinalPassed,
	StatusRejected,
}

var statusSeparator = regexp.MustCompile(`[\s-]+`)

var statusSynonyms = map[string]ApplicantStatus{
	"submitted":             StatusSubmitted,
	"apply_submitted":       StatusSubmitted,
	"application_submitted": StatusSubmitted,
	"doc_pass":              StatusDocPassed,
	"doc_passed":            StatusDocPassed,
	"document_passed":       StatusDocPassed,
	"interview_done":        StatusInterviewDone,
	"interview_completed":   StatusInterviewDone,
	"interview_scheduled":   StatusInterviewScheduled,
	"interview_schedule":    StatusInterviewScheduled,
	"interview":             StatusInterview,
	"final_pass":            StatusFinalPassed,
	"final_passed":          StatusFinalPassed,
	"rejected":              StatusRejected,
	"reject":                StatusRejected,
	"failed":                StatusRejected,
}

var storageForms = map[ApplicantStatus]string{
	StatusSubmitted:          "submitted",
	StatusDocPassed:          "doc_pass",
	StatusInterviewScheduled: "interview_scheduled",
	StatusInterview:          "interview",
	StatusInterviewDone:      "interview_done",
	StatusFinalPassed:        "final_pass",
	StatusRejected:           "rejected",
}

// NormalizeStatus maps free text onto a canonical state. Unknown values are
// returned in their cleaned-up form; blank input yields StatusNone.
func NormalizeStatus(raw string) ApplicantStatus {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return StatusNone
	}
	cleaned = statusSeparator.ReplaceAllString(cleaned, "_")
	if s, ok := statusSynonyms[cleaned]; ok {
		return s
	}
	return ApplicantStatus(cleaned)
}

func (s ApplicantStatus) IsCanonical() bool {
	_, ok := storageForms[s]
	return ok
}

// StorageForm returns the value written to the status column.
func (s ApplicantStatus) StorageForm() (string, bool) {
	v, ok := storageForms[s]
	return v, ok
}

func (s ApplicantStatus) String() string {
	return string(s)
}

// notifyOnEntry holds the states whose entry triggers an applicant email.
var notifyOnEntry = map[ApplicantStatus]bool{
	StatusDocPassed:   true,
	StatusFinalPassed: true,
	StatusRejected:    true,
}

// Transition is the outcome of moving an applicant from one state to another.
type Transition struct {
	From   ApplicantStatus
	Next   ApplicantStatus
	Notify bool
}

type transitionKey struct {
	from ApplicantStatus
	to   ApplicantStatus
}

// transitions enumerates every (current, target) pair. Any canonical target is
// reachable from any state, including StatusNone for a missing row.
var transitions = buildTransitions()

func buildTransitions() map[transitionKey]Transition {
	froms := append([]ApplicantStatus{StatusNone}, CanonicalStatuses...)
	table := make(map[transitionKey]Transition, len(froms)*len(CanonicalStatuses))
	for _, from := range froms {
		for _, to := range CanonicalStatuses {
			table[transitionKey{from, to}] = Transition{
				From:   from,
				Next:   to,
				Notify: notifyOnEntry[to] && from != to,
			}
		}
	}
	return table
}

// PlanTransition looks up the move from current to target. current is
// normalized first; opaque values plan like StatusNone. ok is false when
// target is not a canonical state.
func PlanTransition(current, target ApplicantStatus) (Transition, bool) {
	from := NormalizeStatus(string(current))
	if !from.IsCanonical() {
		from = StatusNone
	}
	t, ok := transitions[transitionKey{from, NormalizeStatus(string(target))}]
	if ok && from == StatusNone {
		t.From = current
	}
	return t, ok
}
