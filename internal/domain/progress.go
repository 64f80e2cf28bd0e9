package domain

// Progress is the applicant-facing summary of where an application stands.
type Progress struct {
	StatusLabel string `json:"statusLabel"`
	NextLabel   string `json:"nextLabel"`
	Message     string `json:"message"`
}

var progressLabels = map[ApplicantStatus]Progress{
	StatusSubmitted:          {"서류 제출 완료", "서류 심사 중", "심사 완료 후 개별 연락드립니다."},
	StatusDocPassed:          {"서류 합격", "면접 일정 조율", "가능한 면접 일정을 선택해주세요."},
	StatusInterviewScheduled: {"면접 일정 확정", "면접 진행 예정", "면접 일정은 개별 안내드렸습니다."},
	StatusInterview:          {"면접 진행", "최종 심사 중", "최종 심사 후 결과를 안내드립니다."},
	StatusInterviewDone:      {"면접 완료", "최종 심사 중", "최종 심사 후 결과를 안내드립니다."},
	StatusFinalPassed:        {"최종 합격", "가입 안내", "가입 절차를 안내드릴 예정입니다."},
	StatusRejected:           {"불합격", "-", "문의가 필요하시면 연락주세요."},
}

// ProgressFor returns the labels for status. Unrecognized values echo the raw
// text so the applicant still sees something.
func ProgressFor(status ApplicantStatus, raw string) Progress {
	if p, ok := progressLabels[status]; ok {
		return p
	}
	label := raw
	if label == "" {
		label = "-"
	}
	return Progress{StatusLabel: label, NextLabel: "-", Message: "상태 확인 중입니다."}
}
