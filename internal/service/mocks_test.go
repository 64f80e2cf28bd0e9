package service_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/storage"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpsertProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) UpdateSchool(ctx context.Context, id, school string) error {
	args := m.Called(ctx, id, school)
	return args.Error(0)
}
func (m *MockUserRepo) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}

// MockApplicantRepo
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
	args := m.Called(ctx, applicant)
	return args.Error(0)
}
func (m *MockApplicantRepo) UpdateStatus(ctx context.Context, applicant *domain.Applicant) error {
	args := m.Called(ctx, applicant)
	return args.Error(0)
}
func (m *MockApplicantRepo) UpdateInterviewChoices(ctx context.Context, userID string, choices [3]*time.Time, requestedAt time.Time) error {
	args := m.Called(ctx, userID, choices, requestedAt)
	return args.Error(0)
}
func (m *MockApplicantRepo) ScheduleInterview(ctx context.Context, userID string, interviewAt time.Time) error {
	args := m.Called(ctx, userID, interviewAt)
	return args.Error(0)
}
func (m *MockApplicantRepo) ListScheduledInterviews(ctx context.Context, from, to time.Time) ([]domain.ScheduledInterview, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledInterview), args.Error(1)
}

// MockMemberRepo
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
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) List(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockForumRepo
type MockForumRepo struct {
	mock.Mock
}

func (m *MockForumRepo) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.ForumPost, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ForumPost), args.Int(1), args.Error(2)
}
func (m *MockForumRepo) GetPost(ctx context.Context, id int64) (*domain.ForumPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForumPost), args.Error(1)
}
func (m *MockForumRepo) CreatePost(ctx context.Context, post *domain.ForumPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}
func (m *MockForumRepo) UpdatePost(ctx context.Context, post *domain.ForumPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}
func (m *MockForumRepo) DeletePost(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockForumRepo) CountPostsSince(ctx context.Context, authorEmail, category string, since time.Time) (int, error) {
	args := m.Called(ctx, authorEmail, category, since)
	return args.Int(0), args.Error(1)
}
func (m *MockForumRepo) ListComments(ctx context.Context, postID int64) ([]domain.ForumComment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ForumComment), args.Error(1)
}
func (m *MockForumRepo) GetComment(ctx context.Context, id int64) (*domain.ForumComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForumComment), args.Error(1)
}
func (m *MockForumRepo) CreateComment(ctx context.Context, comment *domain.ForumComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}
func (m *MockForumRepo) UpdateComment(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}
func (m *MockForumRepo) DeleteComment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicationReceived(ctx context.Context, name, email, school, intro, motivation string, submittedAt time.Time) error {
	args := m.Called(ctx, name, email, school, intro, motivation, submittedAt)
	return args.Error(0)
}
func (m *MockEmailService) SendInterviewChoices(ctx context.Context, name, email string, choices [3]*time.Time, requestedAt time.Time) error {
	args := m.Called(ctx, name, email, choices, requestedAt)
	return args.Error(0)
}
func (m *MockEmailService) SendInterviewNotice(ctx context.Context, name, email string, interviewAt time.Time) error {
	args := m.Called(ctx, name, email, interviewAt)
	return args.Error(0)
}
func (m *MockEmailService) SendInterviewReminder(ctx context.Context, name, email string, interviewAt time.Time) error {
	args := m.Called(ctx, name, email, interviewAt)
	return args.Error(0)
}
func (m *MockEmailService) SendStatusNotification(ctx context.Context, name, email string, status domain.ApplicantStatus) error {
	args := m.Called(ctx, name, email, status)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, bucket, key string, body io.Reader, opts storage.ObjectOptions) error {
	args := m.Called(ctx, bucket, key, body, opts)
	return args.Error(0)
}
func (m *MockStorage) PublicURL(bucket, key string) string {
	args := m.Called(bucket, key)
	return args.String(0)
}
func (m *MockStorage) Exists(ctx context.Context, bucket, key string) (bool, int64, error) {
	args := m.Called(ctx, bucket, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) Delete(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
