package postgres_test

import (
	"context"
	"testing"
	"time"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForumRepository_ListPosts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewForumRepository(db)
	ctx := context.Background()
	now := time.Now()
	postCols := []string{"id", "title", "content", "author_name", "author_email", "category", "created_at"}

	t.Run("WithCategory", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM forum_posts WHERE category = \\$1").
			WithArgs("자유").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
		mock.ExpectQuery("SELECT (.+) FROM forum_posts WHERE category = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs("자유", 10, 10).
			WillReturnRows(sqlmock.NewRows(postCols).AddRow(int64(3), "t", "c", "Kim", "kim@test.com", "자유", now))

		posts, total, err := repo.ListPosts(ctx, domain.PostFilter{Category: "자유", Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 12, total)
		require.Len(t, posts, 1)
		assert.Equal(t, int64(3), posts[0].ID)
	})

	t.Run("AllCategories", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM forum_posts$").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM forum_posts ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(5, 0).
			WillReturnRows(sqlmock.NewRows(postCols))

		posts, total, err := repo.ListPosts(ctx, domain.PostFilter{Page: 1, PageSize: 5})
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, posts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForumRepository_CountPostsSince(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewForumRepository(db)
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM forum_posts WHERE author_email = \\$1 AND category = \\$2 AND created_at >= \\$3").
		WithArgs("guest@test.com", "자유", since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountPostsSince(context.Background(), "guest@test.com", "자유", since)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForumRepository_CreateComment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewForumRepository(db)
	now := time.Now()
	c := &domain.ForumComment{PostID: 7, Content: "nice", AuthorEmail: "kim@test.com", AuthorName: "Kim"}

	mock.ExpectQuery("INSERT INTO forum_comments").
		WithArgs(int64(7), "nice", "kim@test.com", "Kim").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), now))

	require.NoError(t, repo.CreateComment(context.Background(), c))
	assert.Equal(t, int64(11), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
