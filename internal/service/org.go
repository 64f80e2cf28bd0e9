package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository"
)

type organizationService struct {
	orgRepo    repository.OrganizationRepository
	memberRepo repository.MemberRepository
	viewers    viewerResolver
}

func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository, memberRepo repository.MemberRepository) OrganizationService {
	return &organizationService{
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		viewers:    viewerResolver{userRepo: userRepo, memberRepo: memberRepo},
	}
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.List(ctx)
}

// OrganizationTree nests the flat list by parent_id. Nodes whose parent is
// missing are promoted to roots so nothing disappears from the chart.
func (s *organizationService) OrganizationTree(ctx context.Context) ([]*domain.OrgNode, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildOrgTree(orgs), nil
}

func BuildOrgTree(orgs []domain.Organization) []*domain.OrgNode {
	nodes := make(map[string]*domain.OrgNode, len(orgs))
	for _, o := range orgs {
		nodes[o.ID] = &domain.OrgNode{Organization: o, Children: []*domain.OrgNode{}}
	}

	roots := []*domain.OrgNode{}
	for _, o := range orgs {
		node := nodes[o.ID]
		if o.ParentID != nil {
			if parent, ok := nodes[*o.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (s *organizationService) AdminListOrganizations(ctx context.Context, adminEmail string) ([]domain.Organization, error) {
	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return nil, err
	}
	return s.orgRepo.List(ctx)
}

func (s *organizationService) CreateOrganization(ctx context.Context, adminEmail string, org *domain.Organization) error {
	logger.EnterMethod("organizationService.CreateOrganization", "adminEmail", adminEmail)

	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return err
	}

	org.Name = strings.TrimSpace(org.Name)
	if org.Name == "" {
		return ErrMissingFields
	}
	if org.Depth < 0 {
		return ErrInvalidDepth
	}
	if org.ParentID != nil && strings.TrimSpace(*org.ParentID) == "" {
		org.ParentID = nil
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		logger.ExitMethodWithError("organizationService.CreateOrganization", err)
		return fmt.Errorf("failed to create organization: %w", err)
	}

	logger.ExitMethod("organizationService.CreateOrganization", "id", org.ID)
	return nil
}

// DeleteOrganization removes the node and detaches members assigned to it by name.
func (s *organizationService) DeleteOrganization(ctx context.Context, adminEmail, id string) error {
	logger.EnterMethod("organizationService.DeleteOrganization", "adminEmail", adminEmail, "id", id)

	if _, err := s.viewers.requireOfficer(ctx, adminEmail); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return ErrMissingOrgID
	}

	org, err := s.orgRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrganizationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}

	detached, err := s.memberRepo.ClearOrg(ctx, org.Name)
	if err != nil {
		logger.ExitMethodWithError("organizationService.DeleteOrganization", err)
		return fmt.Errorf("failed to detach members: %w", err)
	}

	if err := s.orgRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("organizationService.DeleteOrganization", err)
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	logger.ExitMethod("organizationService.DeleteOrganization", "detached", detached)
	return nil
}
