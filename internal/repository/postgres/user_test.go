package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/repository"
	"essentia-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "name", "birth", "sex", "school", "created_at"}).
			AddRow("u-1", "kim@test.com", "Kim", "2004-05-01", nil, "Seoul High", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("kim@test.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(ctx, "kim@test.com")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "2004-05-01", *user.Birth)
		assert.Nil(t, user.Sex)
		assert.Equal(t, "Seoul High", *user.School)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE LOWER\\(email\\) = LOWER\\(\\$1\\)").
			WithArgs("nobody@test.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByEmail(ctx, "nobody@test.com")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpsertProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	birth, sex := "2004-05-01", "F"
	u := &domain.User{Email: "kim@test.com", Name: "Kim", Birth: &birth, Sex: &sex}
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO users (.+) ON CONFLICT \\(email\\) DO UPDATE").
		WithArgs("kim@test.com", "Kim", "2004-05-01", "F").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("u-1", created))

	require.NoError(t, repo.UpsertProfile(context.Background(), u))
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, created, u.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListProfiles(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserRepository(db)
	now := time.Now()

	cols := []string{"id", "email", "name", "birth", "sex", "school", "created_at",
		"user_id", "org", "member_code", "president", "role", "joined_at",
		"user_id", "status", "application_submitted_at", "doc_passed_at", "interview_at", "final_passed_at",
		"rejected_at", "doc_introduction", "doc_motive", "interview_choice_1", "interview_choice_2",
		"interview_choice_3", "interview_request_at"}
	rows := sqlmock.NewRows(cols).
		AddRow("u-1", "a@test.com", "Ahn", nil, nil, nil, now,
			"u-1", "Research", "20001", false, nil, now,
			"u-1", "final_pass", now, now, nil, now, nil, "intro", "motive", nil, nil, nil, nil).
		AddRow("u-2", "b@test.com", "Baek", nil, nil, nil, now,
			nil, nil, nil, nil, nil, nil,
			nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM users u LEFT JOIN members m (.+) ORDER BY u.name ASC").WillReturnRows(rows)

	profiles, err := repo.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "20001", *profiles[0].Member.MemberCode)
	assert.Equal(t, domain.StatusFinalPassed, profiles[0].Applicant.Status)
	assert.Equal(t, domain.MemberRoleMember, profiles[0].Role())

	assert.Nil(t, profiles[1].Member)
	assert.Nil(t, profiles[1].Applicant)
	assert.Equal(t, domain.MemberRoleExternal, profiles[1].Role())
	assert.NoError(t, mock.ExpectationsWereMet())
}
