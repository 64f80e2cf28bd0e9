package service

import (
	"context"
	"io"
	"time"

	"essentia-backend/internal/domain"
)

type SessionService interface {
	// CreateSession verifies an identity provider token and issues an access token.
	CreateSession(ctx context.Context, idToken string) (*Session, error)
}

type ApplicantService interface {
	Apply(ctx context.Context, email string, req ApplicationRequest) (*ApplyResult, error)
	TransitionStatus(ctx context.Context, userID, status string) (*domain.Transition, error)
	SubmitInterviewChoices(ctx context.Context, email string, choices [3]string) error
	SendInterviewNotice(ctx context.Context, adminEmail, userID, interviewAt string) (time.Time, error)
	ScheduleInterview(ctx context.Context, adminEmail, userID, interviewAt string) (time.Time, error)
	GetProgress(ctx context.Context, email string) (*ProgressResult, error)
}

type MemberService interface {
	ListRoster(ctx context.Context, adminEmail string) ([]domain.UserProfile, error)
	UpdateMember(ctx context.Context, adminEmail string, update MemberUpdate) error
	DeleteMember(ctx context.Context, adminEmail, userID string) error
	Directory(ctx context.Context) ([]domain.DirectoryEntry, error)
	NextMemberCode(ctx context.Context, officer bool) (string, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, email string) (*ProfileResult, error)
	UpsertProfile(ctx context.Context, email, name, birth, sex string) (*domain.User, error)
}

type OrganizationService interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	OrganizationTree(ctx context.Context) ([]*domain.OrgNode, error)
	AdminListOrganizations(ctx context.Context, adminEmail string) ([]domain.Organization, error)
	CreateOrganization(ctx context.Context, adminEmail string, org *domain.Organization) error
	DeleteOrganization(ctx context.Context, adminEmail, id string) error
}

type ForumService interface {
	ListPosts(ctx context.Context, filter domain.PostFilter) (*PostPage, error)
	GetPost(ctx context.Context, viewerEmail string, id int64) (*PostView, error)
	CreatePost(ctx context.Context, email string, post *domain.ForumPost) error
	UpdatePost(ctx context.Context, email string, post *domain.ForumPost) error
	DeletePost(ctx context.Context, email string, id int64) error

	ListComments(ctx context.Context, viewerEmail string, postID int64) ([]CommentView, error)
	CreateComment(ctx context.Context, email string, postID int64, content string) (*domain.ForumComment, error)
	UpdateComment(ctx context.Context, email string, commentID int64, content string) error
	DeleteComment(ctx context.Context, email string, commentID int64) error
}

type UploadService interface {
	UploadForumImage(ctx context.Context, email string, file Upload) (*UploadResult, error)
	UploadProfileImage(ctx context.Context, email string, file Upload) (*UploadResult, error)
}

type EmailService interface {
	SendApplicationReceived(ctx context.Context, name, email, school, intro, motivation string, submittedAt time.Time) error
	SendInterviewChoices(ctx context.Context, name, email string, choices [3]*time.Time, requestedAt time.Time) error
	SendInterviewNotice(ctx context.Context, name, email string, interviewAt time.Time) error
	SendInterviewReminder(ctx context.Context, name, email string, interviewAt time.Time) error
	SendStatusNotification(ctx context.Context, name, email string, status domain.ApplicantStatus) error
}

type Session struct {
	AccessToken string    `json:"accessToken"`
	Email       string    `json:"email"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type ApplicationRequest struct {
	School     string
	Intro      string
	Motivation string
	Agreed     bool
}

type ApplyResult struct {
	AlreadyApplied bool                   `json:"alreadyApplied"`
	Status         domain.ApplicantStatus `json:"status,omitempty"`
}

type ProgressResult struct {
	Status   domain.ApplicantStatus `json:"status"`
	Progress domain.Progress        `json:"progress"`
}

// MemberUpdate is an admin edit of one person. Nil fields are left alone;
// OrgSet distinguishes "set org to null" from "leave org unchanged".
type MemberUpdate struct {
	UserID          string
	President       *bool
	OrgSet          bool
	Org             *string
	ApplicantStatus *string
}

type ProfileResult struct {
	domain.UserProfile
	Role domain.MemberRole `json:"role"`
}

type PostPage struct {
	Posts    []domain.ForumPost `json:"posts"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
}

type PostView struct {
	domain.ForumPost
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

type CommentView struct {
	domain.ForumComment
	CanEdit bool `json:"canEdit"`
}

// Upload is an image received from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadResult struct {
	URL    string `json:"url"`
	Path   string `json:"path"`
	Bucket string `json:"bucket"`
}
