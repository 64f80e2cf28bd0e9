package postgres

import (
	"context"
	"database/sql"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository"
)

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	logger.EnterMethod("organizationRepository.Create", "name", org.Name, "depth", org.Depth)

	query := `INSERT INTO organizations (name, parent_id, depth) VALUES ($1, $2, $3) RETURNING id`
	logger.DatabaseCall("INSERT", "organizations", "name", org.Name)

	err := r.db.QueryRowContext(ctx, query, org.Name, nullString(org.ParentID), org.Depth).Scan(&org.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "name", org.Name)
		logger.ExitMethodWithError("organizationRepository.Create", err, "name", org.Name)
		return err
	}

	logger.DatabaseResult("INSERT", 1, nil, "orgID", org.ID)
	logger.ExitMethod("organizationRepository.Create", "orgID", org.ID)
	return nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	org := &domain.Organization{}
	var parentID sql.NullString
	query := `SELECT id, name, parent_id, depth FROM organizations WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &parentID, &org.Depth); err != nil {
		return nil, notFound(err)
	}
	org.ParentID = stringPtr(parentID)
	return org, nil
}

func (r *organizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, parent_id, depth FROM organizations ORDER BY depth ASC, name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var org domain.Organization
		var parentID sql.NullString
		if err := rows.Scan(&org.ID, &org.Name, &parentID, &org.Depth); err != nil {
			return nil, err
		}
		org.ParentID = stringPtr(parentID)
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

func (r *organizationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM organizations WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
