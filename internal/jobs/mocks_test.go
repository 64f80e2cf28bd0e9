package jobs_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"essentia-backend/internal/domain"
)

type MockApplicantRepo struct {
	mock.Mock
}

func (m *MockApplicantRepo) GetByUserID(ctx context.Context, userID string) (*domain.Applicant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Applicant), args.Error(1)
}

func (m *MockApplicantRepo) Create(ctx context.Context, applicant *domain.Applicant) error {
	return m.Called(ctx, applicant).Error(0)
}

func (m *MockApplicantRepo) UpdateStatus(ctx context.Context, applicant *domain.Applicant) error {
	return m.Called(ctx, applicant).Error(0)
}

func (m *MockApplicantRepo) UpdateInterviewChoices(ctx context.Context, userID string, choices [3]*time.Time, requestedAt time.Time) error {
	return m.Called(ctx, userID, choices, requestedAt).Error(0)
}

func (m *MockApplicantRepo) ScheduleInterview(ctx context.Context, userID string, interviewAt time.Time) error {
	return m.Called(ctx, userID, interviewAt).Error(0)
}

func (m *MockApplicantRepo) ListScheduledInterviews(ctx context.Context, from, to time.Time) ([]domain.ScheduledInterview, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledInterview), args.Error(1)
}

type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) GetByUserID(ctx context.Context, userID string) (*domain.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockMemberRepo) MaxCode(ctx context.Context, president bool) (string, error) {
	args := m.Called(ctx, president)
	return args.String(0), args.Error(1)
}

func (m *MockMemberRepo) ListDirectory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectoryEntry), args.Error(1)
}

func (m *MockMemberRepo) ClearOrg(ctx context.Context, orgName string) (int64, error) {
	args := m.Called(ctx, orgName)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationReceived(ctx context.Context, name, email, school, intro, motivation string, submittedAt time.Time) error {
	return m.Called(ctx, name, email, school, intro, motivation, submittedAt).Error(0)
}

func (m *MockEmailService) SendInterviewChoices(ctx context.Context, name, email string, choices [3]*time.Time, requestedAt time.Time) error {
	return m.Called(ctx, name, email, choices, requestedAt).Error(0)
}

func (m *MockEmailService) SendInterviewNotice(ctx context.Context, name, email string, interviewAt time.Time) error {
	return m.Called(ctx, name, email, interviewAt).Error(0)
}

func (m *MockEmailService) SendInterviewReminder(ctx context.Context, name, email string, interviewAt time.Time) error {
	return m.Called(ctx, name, email, interviewAt).Error(0)
}

func (m *MockEmailService) SendStatusNotification(ctx context.Context, name, email string, status domain.ApplicantStatus) error {
	return m.Called(ctx, name, email, status).Error(0)
}

type MockRosterWriter struct {
	mock.Mock
}

func (m *MockRosterWriter) WriteRoster(ctx context.Context, entries []domain.DirectoryEntry) error {
	return m.Called(ctx, entries).Error(0)
}
