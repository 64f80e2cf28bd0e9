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
	"essentia-backend/internal/repository"
)

const maxPageSize = 100

// ForumRules are the posting limits applied to non-members.
type ForumRules struct {
	FreeCategory        string
	NonMemberDailyLimit int
	DefaultPageSize     int
}

type forumService struct {
	forumRepo repository.ForumRepository
	rules     ForumRules
	clock     clockwork.Clock
	viewers   viewerResolver
}

func NewForumService(
	forumRepo repository.ForumRepository,
	userRepo repository.UserRepository,
	memberRepo repository.MemberRepository,
	rules ForumRules,
	clock clockwork.Clock,
) ForumService {
	if rules.DefaultPageSize <= 0 {
		rules.DefaultPageSize = 10
	}
	return &forumService{
		forumRepo: forumRepo,
		rules:     rules,
		clock:     clock,
		viewers:   viewerResolver{userRepo: userRepo, memberRepo: memberRepo},
	}
}

func (s *forumService) ListPosts(ctx context.Context, filter domain.PostFilter) (*PostPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = s.rules.DefaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	filter.Category = strings.TrimSpace(filter.Category)

	posts, total, err := s.forumRepo.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	if posts == nil {
		posts = []domain.ForumPost{}
	}
	return &PostPage{Posts: posts, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}

func (s *forumService) GetPost(ctx context.Context, viewerEmail string, id int64) (*PostView, error) {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	viewer, err := s.viewers.resolve(ctx, viewerEmail)
	if err != nil {
		return nil, err
	}

	return &PostView{
		ForumPost: *post,
		CanEdit:   isAuthor(viewerEmail, post.AuthorEmail),
		CanDelete: canDeletePost(viewer, post),
	}, nil
}

func (s *forumService) CreatePost(ctx context.Context, email string, post *domain.ForumPost) error {
	logger.EnterMethod("forumService.CreatePost", "email", email)

	post.Title = strings.TrimSpace(post.Title)
	post.Content = strings.TrimSpace(post.Content)
	post.Category = strings.TrimSpace(post.Category)
	if post.Title == "" || post.Content == "" || post.Category == "" {
		return ErrMissingFields
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return err
	}
	if viewer.User == nil {
		return ErrUnknownUser
	}

	if !viewer.IsMember() {
		if post.Category != s.rules.FreeCategory {
			return ErrCategoryNotAllowed
		}
		since := s.clock.Now().Add(-24 * time.Hour)
		count, err := s.forumRepo.CountPostsSince(ctx, email, s.rules.FreeCategory, since)
		if err != nil {
			return fmt.Errorf("failed to count recent posts: %w", err)
		}
		if count >= s.rules.NonMemberDailyLimit {
			return ErrDailyLimit
		}
	}

	post.AuthorEmail = email
	post.AuthorName = viewer.User.Name
	if post.AuthorName == "" {
		post.AuthorName = email
	}

	if err := s.forumRepo.CreatePost(ctx, post); err != nil {
		logger.ExitMethodWithError("forumService.CreatePost", err)
		return fmt.Errorf("failed to create post: %w", err)
	}

	logger.ExitMethod("forumService.CreatePost", "id", post.ID)
	return nil
}

func (s *forumService) UpdatePost(ctx context.Context, email string, post *domain.ForumPost) error {
	existing, err := s.getPost(ctx, post.ID)
	if err != nil {
		return err
	}
	if !isAuthor(email, existing.AuthorEmail) {
		return ErrNotAuthor
	}

	post.Title = strings.TrimSpace(post.Title)
	post.Content = strings.TrimSpace(post.Content)
	post.Category = strings.TrimSpace(post.Category)
	if post.Title == "" || post.Content == "" || post.Category == "" {
		return ErrMissingFields
	}

	if err := s.forumRepo.UpdatePost(ctx, post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

func (s *forumService) DeletePost(ctx context.Context, email string, id int64) error {
	post, err := s.getPost(ctx, id)
	if err != nil {
		return err
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return err
	}
	if !canDeletePost(viewer, post) {
		return ErrNotAuthor
	}

	if err := s.forumRepo.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	logger.Info("Forum post deleted", "id", id, "by", email)
	return nil
}

func (s *forumService) ListComments(ctx context.Context, viewerEmail string, postID int64) ([]CommentView, error) {
	comments, err := s.forumRepo.ListComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	viewer, err := s.viewers.resolve(ctx, viewerEmail)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ForumComment: c,
			CanEdit:      viewer.IsOfficer() || isAuthor(viewerEmail, c.AuthorEmail),
		})
	}
	return views, nil
}

func (s *forumService) CreateComment(ctx context.Context, email string, postID int64, content string) (*domain.ForumComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrMissingFields
	}
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	comment := &domain.ForumComment{
		PostID:      postID,
		Content:     content,
		AuthorEmail: email,
		AuthorName:  email,
	}
	if viewer.User != nil && viewer.User.Name != "" {
		comment.AuthorName = viewer.User.Name
	}

	if err := s.forumRepo.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (s *forumService) UpdateComment(ctx context.Context, email string, commentID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrMissingFields
	}
	if err := s.authorizeComment(ctx, email, commentID); err != nil {
		return err
	}
	if err := s.forumRepo.UpdateComment(ctx, commentID, content); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	return nil
}

func (s *forumService) DeleteComment(ctx context.Context, email string, commentID int64) error {
	if err := s.authorizeComment(ctx, email, commentID); err != nil {
		return err
	}
	if err := s.forumRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// authorizeComment allows officers and the comment's author.
func (s *forumService) authorizeComment(ctx context.Context, email string, commentID int64) error {
	comment, err := s.forumRepo.GetComment(ctx, commentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get comment: %w", err)
	}

	viewer, err := s.viewers.resolve(ctx, email)
	if err != nil {
		return err
	}
	if !viewer.IsOfficer() && !isAuthor(email, comment.AuthorEmail) {
		return ErrNotAuthor
	}
	return nil
}

func (s *forumService) getPost(ctx context.Context, id int64) (*domain.ForumPost, error) {
	post, err := s.forumRepo.GetPost(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func isAuthor(email, authorEmail string) bool {
	return email != "" && email == authorEmail
}

func canDeletePost(viewer *domain.Viewer, post *domain.ForumPost) bool {
	return viewer.IsOfficer() || (viewer.IsMember() && isAuthor(viewer.Email, post.AuthorEmail))
}
