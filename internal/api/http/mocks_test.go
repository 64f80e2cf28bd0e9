package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/service"
)

// MockSessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, idToken string) (*service.Session, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Session), args.Error(1)
}

// MockApplicantService
type MockApplicantService struct {
	mock.Mock
}

func (m *MockApplicantService) Apply(ctx context.Context, email string, req service.ApplicationRequest) (*service.ApplyResult, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ApplyResult), args.Error(1)
}
func (m *MockApplicantService) TransitionStatus(ctx context.Context, userID, status string) (*domain.Transition, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transition), args.Error(1)
}
func (m *MockApplicantService) SubmitInterviewChoices(ctx context.Context, email string, choices [3]string) error {
	args := m.Called(ctx, email, choices)
	return args.Error(0)
}
func (m *MockApplicantService) SendInterviewNotice(ctx context.Context, adminEmail, userID, interviewAt string) (time.Time, error) {
	args := m.Called(ctx, adminEmail, userID, interviewAt)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockApplicantService) ScheduleInterview(ctx context.Context, adminEmail, userID, interviewAt string) (time.Time, error) {
	args := m.Called(ctx, adminEmail, userID, interviewAt)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockApplicantService) GetProgress(ctx context.Context, email string) (*service.ProgressResult, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProgressResult), args.Error(1)
}

// MockMemberService
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) ListRoster(ctx context.Context, adminEmail string) ([]domain.UserProfile, error) {
	args := m.Called(ctx, adminEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserProfile), args.Error(1)
}
func (m *MockMemberService) UpdateMember(ctx context.Context, adminEmail string, update service.MemberUpdate) error {
	args := m.Called(ctx, adminEmail, update)
	return args.Error(0)
}
func (m *MockMemberService) DeleteMember(ctx context.Context, adminEmail, userID string) error {
	args := m.Called(ctx, adminEmail, userID)
	return args.Error(0)
}
func (m *MockMemberService) Directory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DirectoryEntry), args.Error(1)
}
func (m *MockMemberService) NextMemberCode(ctx context.Context, officer bool) (string, error) {
	args := m.Called(ctx, officer)
	return args.String(0), args.Error(1)
}

// MockOrganizationService
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) OrganizationTree(ctx context.Context) ([]*domain.OrgNode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OrgNode), args.Error(1)
}
func (m *MockOrganizationService) AdminListOrganizations(ctx context.Context, adminEmail string) ([]domain.Organization, error) {
	args := m.Called(ctx, adminEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationService) CreateOrganization(ctx context.Context, adminEmail string, org *domain.Organization) error {
	args := m.Called(ctx, adminEmail, org)
	return args.Error(0)
}
func (m *MockOrganizationService) DeleteOrganization(ctx context.Context, adminEmail, id string) error {
	args := m.Called(ctx, adminEmail, id)
	return args.Error(0)
}

// MockForumService
type MockForumService struct {
	mock.Mock
}

func (m *MockForumService) ListPosts(ctx context.Context, filter domain.PostFilter) (*service.PostPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostPage), args.Error(1)
}
func (m *MockForumService) GetPost(ctx context.Context, viewerEmail string, id int64) (*service.PostView, error) {
	args := m.Called(ctx, viewerEmail, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostView), args.Error(1)
}
func (m *MockForumService) CreatePost(ctx context.Context, email string, post *domain.ForumPost) error {
	args := m.Called(ctx, email, post)
	return args.Error(0)
}
func (m *MockForumService) UpdatePost(ctx context.Context, email string, post *domain.ForumPost) error {
	args := m.Called(ctx, email, post)
	return args.Error(0)
}
func (m *MockForumService) DeletePost(ctx context.Context, email string, id int64) error {
	args := m.Called(ctx, email, id)
	return args.Error(0)
}
func (m *MockForumService) ListComments(ctx context.Context, viewerEmail string, postID int64) ([]service.CommentView, error) {
	args := m.Called(ctx, viewerEmail, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.CommentView), args.Error(1)
}
func (m *MockForumService) CreateComment(ctx context.Context, email string, postID int64, content string) (*domain.ForumComment, error) {
	args := m.Called(ctx, email, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForumComment), args.Error(1)
}
func (m *MockForumService) UpdateComment(ctx context.Context, email string, commentID int64, content string) error {
	args := m.Called(ctx, email, commentID, content)
	return args.Error(0)
}
func (m *MockForumService) DeleteComment(ctx context.Context, email string, commentID int64) error {
	args := m.Called(ctx, email, commentID)
	return args.Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadForumImage(ctx context.Context, email string, file service.Upload) (*service.UploadResult, error) {
	args := m.Called(ctx, email, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockUploadService) UploadProfileImage(ctx context.Context, email string, file service.Upload) (*service.UploadResult, error) {
	args := m.Called(ctx, email, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
