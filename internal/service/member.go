package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/metrics"
	"essentia-backend/internal/repository"
)

// CodeBases holds the first member code of each partition.
type CodeBases struct {
	Officer int64
	Member  int64
}

type memberService struct {
	userRepo     repository.UserRepository
	memberRepo   repository.MemberRepository
	applicantSvc ApplicantService
	bases        CodeBases
	clock        clockwork.Clock
	viewers      viewerResolver
}

func NewMemberService(
	userRepo repository.UserRepository,
	memberRepo repository.MemberRepository,
	applicantSvc ApplicantService,
	bases CodeBases,
	clock clockwork.Clock,
) MemberService {
	return &memberService{
		userRepo:     userRepo,
		memberRepo:   memberRepo,
		applicantSvc: applicantSvc,
		bases:        bases,
		clock:        clock,
		viewers:      viewerResolver{userRepo: userRepo, memberRepo: memberRepo},
	}
}

func (s *memberService) ListRoster(ctx context.Context, adminEmail string) ([]domain.UserProfile, error) {
	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return nil, err
	}
	return s.userRepo.ListProfiles(ctx)
}

// UpdateMember applies an admin edit: the applicant status first, then the
// membership fields. Creating a member or flipping the officer flag allocates
// a fresh code in the target partition.
func (s *memberService) UpdateMember(ctx context.Context, adminEmail string, update MemberUpdate) error {
	logger.EnterMethod("memberService.UpdateMember", "userID", update.UserID)

	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return err
	}

	update.UserID = strings.TrimSpace(update.UserID)
	if update.UserID == "" {
		return ErrMissingID
	}
	if update.ApplicantStatus != nil && !domain.NormalizeStatus(*update.ApplicantStatus).IsCanonical() {
		return ErrInvalidStatus
	}

	if update.ApplicantStatus != nil {
		if _, err := s.applicantSvc.TransitionStatus(ctx, update.UserID, *update.ApplicantStatus); err != nil {
			return err
		}
	}

	if update.President == nil && !update.OrgSet {
		logger.ExitMethod("memberService.UpdateMember", "userID", update.UserID, "membership", "unchanged")
		return nil
	}

	org := normalizeOrg(update.Org)

	member, err := s.memberRepo.GetByUserID(ctx, update.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		officer := update.President != nil && *update.President
		code, err := s.NextMemberCode(ctx, officer)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		member = &domain.Member{
			UserID:     update.UserID,
			Org:        org,
			MemberCode: &code,
			President:  officer,
			JoinedAt:   &now,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			logger.ExitMethodWithError("memberService.UpdateMember", err, "userID", update.UserID)
			return fmt.Errorf("failed to create member: %w", err)
		}
		logger.ExitMethod("memberService.UpdateMember", "userID", update.UserID, "created", true, "code", code)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get member: %w", err)
	}

	if update.President != nil && *update.President != member.President {
		code, err := s.NextMemberCode(ctx, *update.President)
		if err != nil {
			return err
		}
		member.MemberCode = &code
		member.President = *update.President
	}
	if update.OrgSet {
		member.Org = org
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		logger.ExitMethodWithError("memberService.UpdateMember", err, "userID", update.UserID)
		return fmt.Errorf("failed to update member: %w", err)
	}

	logger.ExitMethod("memberService.UpdateMember", "userID", update.UserID)
	return nil
}

func (s *memberService) DeleteMember(ctx context.Context, adminEmail, userID string) error {
	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrMissingID
	}
	if err := s.memberRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	logger.InfoContext(ctx, "Member removed", "userID", userID, "by", adminEmail)
	return nil
}

func (s *memberService) Directory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	return s.memberRepo.ListDirectory(ctx)
}

// NextMemberCode returns one past the highest code in the partition, or the
// partition base when it is empty, unparsable or below the base.
func (s *memberService) NextMemberCode(ctx context.Context, officer bool) (string, error) {
	base, partition := s.bases.Member, "member"
	if officer {
		base, partition = s.bases.Officer, "officer"
	}

	raw, err := s.memberRepo.MaxCode(ctx, officer)
	if err != nil {
		return "", fmt.Errorf("failed to read member codes: %w", err)
	}

	next := base
	if current, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil && current >= base {
		next = current + 1
	}

	metrics.MemberCodesAllocatedTotal.WithLabelValues(partition).Inc()
	return strconv.FormatInt(next, 10), nil
}

func normalizeOrg(org *string) *string {
	if org == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*org)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
