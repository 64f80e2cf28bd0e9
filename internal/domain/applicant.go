package domain

import (
	"encoding/json"
	"time"
)

// Applicant is a person's application row. Status holds the canonical form; the
// repository converts to and from the storage form.
type Applicant struct {
	UserID                 string          `json:"-"`
	Status                 ApplicantStatus `json:"status"`
	RawStatus              string          `json:"-"`
	ApplicationSubmittedAt *time.Time      `json:"application_submitted_at"`
	DocPassedAt            *time.Time      `json:"doc_passed_at"`
	InterviewAt            *time.Time      `json:"interview_at"`
	FinalPassedAt          *time.Time      `json:"final_passed_at"`
	RejectedAt             *time.Time      `json:"rejected_at"`
	DocIntroduction        *string         `json:"doc_introduction"`
	DocMotive              *string         `json:"doc_motive"`
	InterviewChoices       [3]*time.Time   `json:"-"`
	InterviewRequestAt     *time.Time      `json:"interview_request_at"`
}

// CanonicalStatus returns the normalized stored status, falling back to the
// entry timestamps only when no status is stored.
func (a *Applicant) CanonicalStatus() ApplicantStatus {
	if a == nil {
		return StatusNone
	}
	if s := NormalizeStatus(string(a.Status)); s != StatusNone {
		return s
	}
	return a.DeriveStatus()
}

// StoredStatus returns the normalized stored status with no timestamp fallback.
// Transitions compare against this value.
func (a *Applicant) StoredStatus() ApplicantStatus {
	if a == nil {
		return StatusNone
	}
	return NormalizeStatus(string(a.Status))
}

// DeriveStatus infers a status from the entry timestamps, latest stage first.
func (a *Applicant) DeriveStatus() ApplicantStatus {
	switch {
	case a.RejectedAt != nil:
		return StatusRejected
	case a.FinalPassedAt != nil:
		return StatusFinalPassed
	case a.InterviewAt != nil:
		return StatusInterviewScheduled
	case a.DocPassedAt != nil:
		return StatusDocPassed
	case a.ApplicationSubmittedAt != nil:
		return StatusSubmitted
	}
	return StatusNone
}

// StampEntry sets the entry timestamp for status if it is still unset.
// States without an entry timestamp are a no-op. Reports whether a field changed.
func (a *Applicant) StampEntry(status ApplicantStatus, at time.Time) bool {
	var field **time.Time
	switch status {
	case StatusSubmitted:
		field = &a.ApplicationSubmittedAt
	case StatusDocPassed:
		field = &a.DocPassedAt
	case StatusFinalPassed:
		field = &a.FinalPassedAt
	case StatusRejected:
		field = &a.RejectedAt
	default:
		return false
	}
	if *field != nil {
		return false
	}
	t := at
	*field = &t
	return true
}

// MarshalJSON flattens the interview choices into numbered fields.
func (a Applicant) MarshalJSON() ([]byte, error) {
	type alias Applicant
	return json.Marshal(struct {
		alias
		InterviewChoice1 *time.Time `json:"interview_choice_1"`
		InterviewChoice2 *time.Time `json:"interview_choice_2"`
		InterviewChoice3 *time.Time `json:"interview_choice_3"`
	}{alias(a), a.InterviewChoices[0], a.InterviewChoices[1], a.InterviewChoices[2]})
}

// ScheduledInterview is an upcoming interview with the contact details needed to remind the applicant.
type ScheduledInterview struct {
	UserID      string
	Email       string
	Name        string
	InterviewAt time.Time
}
