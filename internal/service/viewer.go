package service

import (
	"context"
	"errors"
	"fmt"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/repository"
)

// viewerResolver loads the caller's user and member rows by email.
type viewerResolver struct {
	userRepo   repository.UserRepository
	memberRepo repository.MemberRepository
}

func (r viewerResolver) resolve(ctx context.Context, email string) (*domain.Viewer, error) {
	v := &domain.Viewer{Email: email}
	if email == "" {
		return v, nil
	}

	user, err := r.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return v, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	v.User = user

	member, err := r.memberRepo.GetByUserID(ctx, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return v, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	v.Member = member
	return v, nil
}

func (r viewerResolver) requireOfficer(ctx context.Context, email string) (*domain.Viewer, error) {
	v, err := r.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	if !v.IsOfficer() {
		return nil, ErrNotOfficer
	}
	return v, nil
}
