package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/metrics"
	"essentia-backend/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var mailTemplates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"lines": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br/>"))
	},
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html"))

const subjectPrefix = "[ESSENTIA Science]"

var statusMail = map[domain.ApplicantStatus]struct {
	subject  string
	template string
}{
	domain.StatusDocPassed:   {subjectPrefix + " 서류 합격 안내", "doc_pass.html"},
	domain.StatusFinalPassed: {subjectPrefix + " 최종 합격 안내", "passed.html"},
	domain.StatusRejected:    {subjectPrefix + " 불합격 안내", "dispassed.html"},
}

// MailSender is the subset of *sendgrid.Client used for delivery.
type MailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// MailSettings carries the sender identity and the fixed addresses used in mails.
type MailSettings struct {
	From              string
	FromName          string
	OperationsMailbox string
	MeetingURL        string
	AppBaseURL        string
}

type emailService struct {
	client   MailSender
	settings MailSettings
}

func NewEmailService(apiKey string, settings MailSettings) EmailService {
	return NewEmailServiceWithSender(sendgrid.NewSendClient(apiKey), settings)
}

func NewEmailServiceWithSender(client MailSender, settings MailSettings) EmailService {
	return &emailService{
		client:   client,
		settings: settings,
	}
}

func (s *emailService) SendApplicationReceived(ctx context.Context, name, email, school, intro, motivation string, submittedAt time.Time) error {
	data := map[string]any{
		"Name":        orDash(name),
		"Email":       email,
		"School":      school,
		"SubmittedAt": utils.FormatKST(submittedAt),
		"Intro":       intro,
		"Motivation":  motivation,
	}
	return s.send(ctx, "application", s.settings.OperationsMailbox, "", "새 입회 신청", "application_received.html", data)
}

func (s *emailService) SendInterviewChoices(ctx context.Context, name, email string, choices [3]*time.Time, requestedAt time.Time) error {
	formatted := make([]string, len(choices))
	for i, c := range choices {
		formatted[i] = utils.FormatKSTPtr(c)
	}
	data := map[string]any{
		"Name":        orDash(name),
		"Email":       email,
		"Choices":     formatted,
		"RequestedAt": utils.FormatKST(requestedAt),
	}
	subject := fmt.Sprintf("%s 면접 일정 선택 - %s", subjectPrefix, nameOrEmail(name, email))
	return s.send(ctx, "interview_choices", s.settings.OperationsMailbox, "", subject, "interview_choices.html", data)
}

func (s *emailService) SendInterviewNotice(ctx context.Context, name, email string, interviewAt time.Time) error {
	data := map[string]any{
		"Name":        orDash(name),
		"InterviewAt": utils.FormatKST(interviewAt),
		"MeetingURL":  s.settings.MeetingURL,
	}
	subject := fmt.Sprintf("%s 면접 안내 - %s", subjectPrefix, nameOrEmail(name, email))
	return s.send(ctx, "interview_notice", email, name, subject, "interview_notice.html", data)
}

func (s *emailService) SendInterviewReminder(ctx context.Context, name, email string, interviewAt time.Time) error {
	data := map[string]any{
		"Name":        orDash(name),
		"InterviewAt": utils.FormatKST(interviewAt),
		"MeetingURL":  s.settings.MeetingURL,
	}
	subject := fmt.Sprintf("%s 면접 일정 리마인더 - %s", subjectPrefix, nameOrEmail(name, email))
	return s.send(ctx, "interview_reminder", email, name, subject, "interview_reminder.html", data)
}

func (s *emailService) SendStatusNotification(ctx context.Context, name, email string, status domain.ApplicantStatus) error {
	m, ok := statusMail[status]
	if !ok {
		return fmt.Errorf("no notification for status %q", status)
	}
	data := map[string]any{
		"Name":    orDash(name),
		"BaseURL": strings.TrimRight(s.settings.AppBaseURL, "/"),
	}
	return s.send(ctx, "status_"+string(status), email, name, m.subject, m.template, data)
}

func (s *emailService) send(ctx context.Context, kind, to, toName, subject, tmpl string, data any) (err error) {
	defer func() {
		metrics.NotificationsTotal.WithLabelValues(kind, sendResult(err)).Inc()
	}()

	var body bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl, err)
	}

	from := mail.NewEmail(s.settings.FromName, s.settings.From)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, "", body.String())

	logger.ExternalServiceCall("SendGrid", "Send", "kind", kind, "to", to)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("SendGrid", "Send", err, "kind", kind)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("SendGrid", "Send", err, "kind", kind)
		return err
	}

	logger.ExternalServiceResult("SendGrid", "Send", nil, "kind", kind, "status", response.StatusCode)
	return nil
}

func sendResult(err error) string {
	if err != nil {
		return "failed"
	}
	return "sent"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func nameOrEmail(name, email string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	return email
}
