package repository

import (
	"context"
	"errors"
	"time"

	"essentia-backend/internal/domain"
)

// ErrNotFound is returned by single-row lookups when no row matches.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpsertProfile inserts or updates name, birth and sex keyed by email.
	UpsertProfile(ctx context.Context, user *domain.User) error
	UpdateSchool(ctx context.Context, id, school string) error
	// ListProfiles returns every person with member and applicant rows, ordered by name.
	ListProfiles(ctx context.Context) ([]domain.UserProfile, error)
}

type ApplicantRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Applicant, error)
	Create(ctx context.Context, applicant *domain.Applicant) error
	// UpdateStatus writes status and the entry timestamps.
	UpdateStatus(ctx context.Context, applicant *domain.Applicant) error
	UpdateInterviewChoices(ctx context.Context, userID string, choices [3]*time.Time, requestedAt time.Time) error
	ScheduleInterview(ctx context.Context, userID string, interviewAt time.Time) error
	ListScheduledInterviews(ctx context.Context, from, to time.Time) ([]domain.ScheduledInterview, error)
}

type MemberRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Member, error)
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, userID string) error
	// MaxCode returns the highest member_code in the partition, or "" if it is empty.
	MaxCode(ctx context.Context, president bool) (string, error)
	ListDirectory(ctx context.Context) ([]domain.DirectoryEntry, error)
	ClearOrg(ctx context.Context, orgName string) (int64, error)
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
	List(ctx context.Context) ([]domain.Organization, error)
	Delete(ctx context.Context, id string) error
}

type ForumRepository interface {
	ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.ForumPost, int, error)
	GetPost(ctx context.Context, id int64) (*domain.ForumPost, error)
	CreatePost(ctx context.Context, post *domain.ForumPost) error
	UpdatePost(ctx context.Context, post *domain.ForumPost) error
	DeletePost(ctx context.Context, id int64) error
	CountPostsSince(ctx context.Context, authorEmail, category string, since time.Time) (int, error)

	ListComments(ctx context.Context, postID int64) ([]domain.ForumComment, error)
	GetComment(ctx context.Context, id int64) (*domain.ForumComment, error)
	CreateComment(ctx context.Context, comment *domain.ForumComment) error
	UpdateComment(ctx context.Context, id int64, content string) error
	DeleteComment(ctx context.Context, id int64) error
}
