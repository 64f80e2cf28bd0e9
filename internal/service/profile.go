package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/repository"
)

type profileService struct {
	userRepo      repository.UserRepository
	memberRepo    repository.MemberRepository
	applicantRepo repository.ApplicantRepository
}

func NewProfileService(userRepo repository.UserRepository, memberRepo repository.MemberRepository, applicantRepo repository.ApplicantRepository) ProfileService {
	return &profileService{
		userRepo:      userRepo,
		memberRepo:    memberRepo,
		applicantRepo: applicantRepo,
	}
}

// GetProfile returns nil without error when the email has no user row yet.
func (s *profileService) GetProfile(ctx context.Context, email string) (*ProfileResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile := domain.UserProfile{User: *user}

	member, err := s.memberRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	profile.Member = member

	applicant, err := s.applicantRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	if applicant != nil {
		applicant.Status = applicant.CanonicalStatus()
	}
	profile.Applicant = applicant

	return &ProfileResult{UserProfile: profile, Role: profile.Role()}, nil
}

func (s *profileService) UpsertProfile(ctx context.Context, email, name, birth, sex string) (*domain.User, error) {
	name, birth, sex = strings.TrimSpace(name), strings.TrimSpace(birth), strings.TrimSpace(sex)
	if name == "" || birth == "" || sex == "" {
		return nil, ErrMissingFields
	}

	user := &domain.User{Email: email, Name: name, Birth: &birth, Sex: &sex}
	if err := s.userRepo.UpsertProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return user, nil
}
