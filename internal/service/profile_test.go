package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/repository"
	"essentia-backend/internal/service"
)

func TestProfileService_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("no user row yet", func(t *testing.T) {
		users, members, applicants := new(MockUserRepo), new(MockMemberRepo), new(MockApplicantRepo)
		users.On("GetByEmail", mock.Anything, "new@test.com").Return(nil, repository.ErrNotFound)
		svc := service.NewProfileService(users, members, applicants)

		res, err := svc.GetProfile(ctx, "new@test.com")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("officer with applicant history", func(t *testing.T) {
		users, members, applicants := new(MockUserRepo), new(MockMemberRepo), new(MockApplicantRepo)
		users.On("GetByEmail", mock.Anything, "kim@test.com").Return(&domain.User{ID: "u-1", Email: "kim@test.com", Name: "Kim"}, nil)
		members.On("GetByUserID", mock.Anything, "u-1").Return(&domain.Member{UserID: "u-1", President: true, MemberCode: strPtr("100000")}, nil)
		applicants.On("GetByUserID", mock.Anything, "u-1").Return(&domain.Applicant{UserID: "u-1", Status: "final_pass"}, nil)
		svc := service.NewProfileService(users, members, applicants)

		res, err := svc.GetProfile(ctx, "kim@test.com")
		require.NoError(t, err)
		assert.Equal(t, domain.MemberRolePresident, res.Role)
		assert.Equal(t, domain.StatusFinalPassed, res.Applicant.Status)
	})

	t.Run("external person", func(t *testing.T) {
		users, members, applicants := new(MockUserRepo), new(MockMemberRepo), new(MockApplicantRepo)
		users.On("GetByEmail", mock.Anything, "lee@test.com").Return(&domain.User{ID: "u-2"}, nil)
		members.On("GetByUserID", mock.Anything, "u-2").Return(nil, repository.ErrNotFound)
		applicants.On("GetByUserID", mock.Anything, "u-2").Return(nil, repository.ErrNotFound)
		svc := service.NewProfileService(users, members, applicants)

		res, err := svc.GetProfile(ctx, "lee@test.com")
		require.NoError(t, err)
		assert.Equal(t, domain.MemberRoleExternal, res.Role)
		assert.Nil(t, res.Member)
		assert.Nil(t, res.Applicant)
	})
}

func TestProfileService_UpsertProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("all fields required", func(t *testing.T) {
		svc := service.NewProfileService(new(MockUserRepo), new(MockMemberRepo), new(MockApplicantRepo))
		_, err := svc.UpsertProfile(ctx, "kim@test.com", "Kim", "2008-01-01", " ")
		assert.ErrorIs(t, err, service.ErrMissingFields)
	})

	t.Run("saves trimmed values", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("UpsertProfile", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "kim@test.com" && u.Name == "Kim" && *u.Birth == "2008-01-01" && *u.Sex == "F"
		})).Return(nil)
		svc := service.NewProfileService(users, new(MockMemberRepo), new(MockApplicantRepo))

		user, err := svc.UpsertProfile(ctx, "kim@test.com", " Kim ", "2008-01-01", "F")
		require.NoError(t, err)
		assert.Equal(t, "Kim", user.Name)
		users.AssertExpectations(t)
	})
}
