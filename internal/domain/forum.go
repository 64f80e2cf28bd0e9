package domain

import "time"

type ForumPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"-"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

type ForumComment struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"-"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostFilter selects a page of posts, newest first.
type PostFilter struct {
	Category string
	Page     int
	PageSize int
}

func (f PostFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}
