package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository"
)

type forumRepository struct {
	db *sql.DB
}

func NewForumRepository(db *sql.DB) repository.ForumRepository {
	return &forumRepository{db: db}
}

func (r *forumRepository) ListPosts(ctx context.Context, filter domain.PostFilter) ([]domain.ForumPost, int, error) {
	logger.EnterMethod("forumRepository.ListPosts", "category", filter.Category, "page", filter.Page, "pageSize", filter.PageSize)

	where := ""
	args := []any{}
	if filter.Category != "" {
		where = " WHERE category = $1"
		args = append(args, filter.Category)
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM forum_posts` + where
	logger.DatabaseCall("SELECT", "forum_posts count", "category", filter.Category)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("forumRepository.ListPosts", err)
		return nil, 0, err
	}

	n := len(args)
	query := `SELECT id, title, content, author_name, author_email, category, created_at FROM forum_posts` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", n+1, n+2)
	args = append(args, filter.PageSize, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("forumRepository.ListPosts", err)
		return nil, 0, err
	}
	defer rows.Close()

	var posts []domain.ForumPost
	for rows.Next() {
		var p domain.ForumPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorName, &p.AuthorEmail, &p.Category, &p.CreatedAt); err != nil {
			logger.ExitMethodWithError("forumRepository.ListPosts", err)
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	logger.DatabaseResult("SELECT", int64(len(posts)), nil)
	logger.ExitMethod("forumRepository.ListPosts", "count", len(posts), "total", total)
	return posts, total, nil
}

func (r *forumRepository) GetPost(ctx context.Context, id int64) (*domain.ForumPost, error) {
	p := &domain.ForumPost{}
	query := `SELECT id, title, content, author_name, author_email, category, created_at FROM forum_posts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Content, &p.AuthorName, &p.AuthorEmail, &p.Category, &p.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *forumRepository) CreatePost(ctx context.Context, p *domain.ForumPost) error {
	query := `INSERT INTO forum_posts (title, content, author_email, author_name, category)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, p.Title, p.Content, p.AuthorEmail, p.AuthorName, p.Category).Scan(&p.ID, &p.CreatedAt)
}

func (r *forumRepository) UpdatePost(ctx context.Context, p *domain.ForumPost) error {
	query := `UPDATE forum_posts SET title = $1, content = $2, category = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, p.Title, p.Content, p.Category, p.ID)
	return err
}

func (r *forumRepository) DeletePost(ctx context.Context, id int64) error {
	query := `DELETE FROM forum_posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *forumRepository) CountPostsSince(ctx context.Context, authorEmail, category string, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM forum_posts WHERE author_email = $1 AND category = $2 AND created_at >= $3`
	err := r.db.QueryRowContext(ctx, query, authorEmail, category, since).Scan(&count)
	return count, err
}

func (r *forumRepository) ListComments(ctx context.Context, postID int64) ([]domain.ForumComment, error) {
	query := `SELECT id, post_id, content, author_name, author_email, created_at
	          FROM forum_comments WHERE post_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.ForumComment
	for rows.Next() {
		var c domain.ForumComment
		if err := rows.Scan(&c.ID, &c.PostID, &c.Content, &c.AuthorName, &c.AuthorEmail, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *forumRepository) GetComment(ctx context.Context, id int64) (*domain.ForumComment, error) {
	c := &domain.ForumComment{}
	query := `SELECT id, post_id, content, author_name, author_email, created_at FROM forum_comments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.PostID, &c.Content, &c.AuthorName, &c.AuthorEmail, &c.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *forumRepository) CreateComment(ctx context.Context, c *domain.ForumComment) error {
	query := `INSERT INTO forum_comments (post_id, content, author_email, author_name)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, c.PostID, c.Content, c.AuthorEmail, c.AuthorName).Scan(&c.ID, &c.CreatedAt)
}

func (r *forumRepository) UpdateComment(ctx context.Context, id int64, content string) error {
	query := `UPDATE forum_comments SET content = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, content, id)
	return err
}

func (r *forumRepository) DeleteComment(ctx context.Context, id int64) error {
	query := `DELETE FROM forum_comments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
