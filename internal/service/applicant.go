package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/metrics"
	"essentia-backend/internal/repository"
	"essentia-backend/internal/utils"
)

type applicantService struct {
	userRepo      repository.UserRepository
	applicantRepo repository.ApplicantRepository
	memberRepo    repository.MemberRepository
	emailSvc      EmailService
	clock         clockwork.Clock
	viewers       viewerResolver
}

func NewApplicantService(
	userRepo repository.UserRepository,
	applicantRepo repository.ApplicantRepository,
	memberRepo repository.MemberRepository,
	emailSvc EmailService,
	clock clockwork.Clock,
) ApplicantService {
	return &applicantService{
		userRepo:      userRepo,
		applicantRepo: applicantRepo,
		memberRepo:    memberRepo,
		emailSvc:      emailSvc,
		clock:         clock,
		viewers:       viewerResolver{userRepo: userRepo, memberRepo: memberRepo},
	}
}

func (s *applicantService) Apply(ctx context.Context, email string, req ApplicationRequest) (*ApplyResult, error) {
	logger.EnterMethod("applicantService.Apply", "email", email)

	school := strings.TrimSpace(req.School)
	intro := strings.TrimSpace(req.Intro)
	motivation := strings.TrimSpace(req.Motivation)
	if !req.Agreed || school == "" || intro == "" || motivation == "" {
		return nil, ErrMissingFields
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if viewer.User == nil {
		return nil, ErrUserNotFound
	}
	if viewer.IsMember() {
		return nil, ErrAlreadyMember
	}

	existing, err := s.getApplicant(ctx, viewer.User.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.ExitMethod("applicantService.Apply", "alreadyApplied", true)
		return &ApplyResult{AlreadyApplied: true, Status: existing.CanonicalStatus()}, nil
	}

	if err := s.userRepo.UpdateSchool(ctx, viewer.User.ID, school); err != nil {
		return nil, fmt.Errorf("failed to update school: %w", err)
	}

	now := s.clock.Now()
	applicant := &domain.Applicant{
		UserID:                 viewer.User.ID,
		Status:                 domain.StatusSubmitted,
		ApplicationSubmittedAt: &now,
		DocIntroduction:        &intro,
		DocMotive:              &motivation,
	}
	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		logger.ExitMethodWithError("applicantService.Apply", err)
		return nil, fmt.Errorf("failed to create applicant: %w", err)
	}
	metrics.ApplicationsSubmittedTotal.Inc()

	if err := s.emailSvc.SendApplicationReceived(ctx, viewer.User.Name, viewer.User.Email, school, intro, motivation, now); err != nil {
		logger.ErrorContext(ctx, "Failed to notify operations of new application", "userID", viewer.User.ID, "error", err)
	}

	logger.ExitMethod("applicantService.Apply", "userID", viewer.User.ID)
	return &ApplyResult{AlreadyApplied: false}, nil
}

// TransitionStatus moves a person's application to status, creating the
// applicant row when needed. The status email goes out after the write; a
// delivery failure is logged and does not undo the change.
func (s *applicantService) TransitionStatus(ctx context.Context, userID, status string) (*domain.Transition, error) {
	logger.EnterMethod("applicantService.TransitionStatus", "userID", userID, "status", status)

	target := domain.NormalizeStatus(status)
	if !target.IsCanonical() {
		return nil, ErrInvalidStatus
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingID
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	applicant, err := s.getApplicant(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, _ := domain.PlanTransition(applicant.StoredStatus(), target)
	now := s.clock.Now()

	if applicant == nil {
		applicant = &domain.Applicant{UserID: userID, Status: plan.Next}
		applicant.StampEntry(plan.Next, now)
		if err := s.applicantRepo.Create(ctx, applicant); err != nil {
			logger.ExitMethodWithError("applicantService.TransitionStatus", err, "userID", userID)
			return nil, fmt.Errorf("failed to create applicant: %w", err)
		}
	} else {
		applicant.Status = plan.Next
		applicant.StampEntry(plan.Next, now)
		if err := s.applicantRepo.UpdateStatus(ctx, applicant); err != nil {
			logger.ExitMethodWithError("applicantService.TransitionStatus", err, "userID", userID)
			return nil, fmt.Errorf("failed to update applicant status: %w", err)
		}
	}
	metrics.ApplicantTransitionsTotal.WithLabelValues(string(plan.Next)).Inc()

	if plan.Notify {
		if err := s.emailSvc.SendStatusNotification(ctx, user.Name, user.Email, plan.Next); err != nil {
			logger.ErrorContext(ctx, "Failed to send status notification", "userID", userID, "status", plan.Next, "error", err)
		}
	}

	logger.ExitMethod("applicantService.TransitionStatus", "userID", userID, "from", plan.From, "next", plan.Next, "notify", plan.Notify)
	return &plan, nil
}

func (s *applicantService) SubmitInterviewChoices(ctx context.Context, email string, choices [3]string) error {
	logger.EnterMethod("applicantService.SubmitInterviewChoices", "email", email)

	var parsed [3]*time.Time
	for i, raw := range choices {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			if i == 0 {
				return ErrMissingFirstChoice
			}
			continue
		}
		t, err := utils.ParseLocalDateTime(raw)
		if err != nil {
			return ErrInvalidDatetime
		}
		parsed[i] = &t
	}

	for i := range parsed {
		for j := i + 1; j < len(parsed); j++ {
			if parsed[i] != nil && parsed[j] != nil && parsed[i].Equal(*parsed[j]) {
				return ErrDuplicateChoice
			}
		}
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	applicant, err := s.getApplicant(ctx, user.ID)
	if err != nil {
		return err
	}
	if applicant == nil {
		return ErrApplicantNotFound
	}
	if applicant.CanonicalStatus() != domain.StatusDocPassed {
		return ErrWrongApplicantState
	}

	now := s.clock.Now()
	if err := s.applicantRepo.UpdateInterviewChoices(ctx, user.ID, parsed, now); err != nil {
		logger.ExitMethodWithError("applicantService.SubmitInterviewChoices", err)
		return fmt.Errorf("failed to save interview choices: %w", err)
	}

	if err := s.emailSvc.SendInterviewChoices(ctx, user.Name, user.Email, parsed, now); err != nil {
		logger.ErrorContext(ctx, "Failed to send interview choices summary", "userID", user.ID, "error", err)
	}

	logger.ExitMethod("applicantService.SubmitInterviewChoices", "userID", user.ID)
	return nil
}

// SendInterviewNotice emails the applicant the interview time and meeting
// link. An unparsable explicit time falls back to the stored one.
func (s *applicantService) SendInterviewNotice(ctx context.Context, adminEmail, userID, interviewAt string) (time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return time.Time{}, ErrMissingID
	}
	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return time.Time{}, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return time.Time{}, ErrApplicantNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get user: %w", err)
	}

	var effective *time.Time
	if raw := strings.TrimSpace(interviewAt); raw != "" {
		if t, err := utils.ParseLocalDateTime(raw); err == nil {
			effective = &t
		}
	}
	if effective == nil {
		applicant, err := s.getApplicant(ctx, userID)
		if err != nil {
			return time.Time{}, err
		}
		if applicant != nil {
			effective = applicant.InterviewAt
		}
	}
	if effective == nil {
		return time.Time{}, ErrMissingInterviewTime
	}

	if err := s.emailSvc.SendInterviewNotice(ctx, user.Name, user.Email, *effective); err != nil {
		return time.Time{}, fmt.Errorf("failed to send interview notice: %w", err)
	}

	logger.InfoContext(ctx, "Interview notice sent", "userID", userID, "interviewAt", effective.UTC())
	return *effective, nil
}

func (s *applicantService) ScheduleInterview(ctx context.Context, adminEmail, userID, interviewAt string) (time.Time, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return time.Time{}, ErrMissingID
	}
	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return time.Time{}, err
	}

	raw := strings.TrimSpace(interviewAt)
	if raw == "" {
		return time.Time{}, ErrMissingInterviewTime
	}
	at, err := utils.ParseLocalDateTime(raw)
	if err != nil {
		return time.Time{}, ErrInvalidDatetime
	}

	if err := s.applicantRepo.ScheduleInterview(ctx, userID, at); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return time.Time{}, ErrApplicantNotFound
		}
		return time.Time{}, fmt.Errorf("failed to schedule interview: %w", err)
	}
	metrics.ApplicantTransitionsTotal.WithLabelValues(string(domain.StatusInterviewScheduled)).Inc()

	return at, nil
}

func (s *applicantService) GetProgress(ctx context.Context, email string) (*ProgressResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	applicant, err := s.getApplicant(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}

	status := applicant.CanonicalStatus()
	return &ProgressResult{
		Status:   status,
		Progress: domain.ProgressFor(status, applicant.RawStatus),
	}, nil
}

// getApplicant returns nil without error when the person has no applicant row.
func (s *applicantService) getApplicant(ctx context.Context, userID string) (*domain.Applicant, error) {
	applicant, err := s.applicantRepo.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	return applicant, nil
}
