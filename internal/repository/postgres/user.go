package postgres

import (
	"context"
	"database/sql"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, name, birth, sex, school, created_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var birth, sex, school sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &birth, &sex, &school, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Birth = stringPtr(birth)
	u.Sex = stringPtr(sex)
	u.School = stringPtr(school)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

func (r *userRepository) UpsertProfile(ctx context.Context, u *domain.User) error {
	logger.EnterMethod("userRepository.UpsertProfile", "email", u.Email)

	query := `INSERT INTO users (email, name, birth, sex)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, birth = EXCLUDED.birth, sex = EXCLUDED.sex
	          RETURNING id, created_at`
	logger.DatabaseCall("UPSERT", "users", "email", u.Email)

	err := r.db.QueryRowContext(ctx, query, u.Email, u.Name, nullString(u.Birth), nullString(u.Sex)).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		logger.DatabaseResult("UPSERT", 0, err, "email", u.Email)
		logger.ExitMethodWithError("userRepository.UpsertProfile", err, "email", u.Email)
		return err
	}

	logger.DatabaseResult("UPSERT", 1, nil, "userID", u.ID)
	logger.ExitMethod("userRepository.UpsertProfile", "userID", u.ID)
	return nil
}

func (r *userRepository) UpdateSchool(ctx context.Context, id, school string) error {
	query := `UPDATE users SET school = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, school, id)
	return err
}

func (r *userRepository) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	logger.EnterMethod("userRepository.ListProfiles")

	query := `SELECT u.id, u.email, u.name, u.birth, u.sex, u.school, u.created_at,
	                 m.user_id, m.org, m.member_code, m.president, m.role, m.joined_at,
	                 ` + applicantSelectColumns("a") + `
	          FROM users u
	          LEFT JOIN members m ON m.user_id = u.id
	          LEFT JOIN applicants a ON a.user_id = u.id
	          ORDER BY u.name ASC`
	logger.DatabaseCall("SELECT", "users LEFT JOIN members, applicants")

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("userRepository.ListProfiles", err)
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.UserProfile
	for rows.Next() {
		var p domain.UserProfile
		var birth, sex, school sql.NullString
		var mRow memberRow
		var aRow applicantRow

		dest := []any{&p.ID, &p.Email, &p.Name, &birth, &sex, &school, &p.CreatedAt,
			&mRow.userID, &mRow.org, &mRow.code, &mRow.president, &mRow.role, &mRow.joinedAt}
		dest = append(dest, aRow.dest()...)
		if err := rows.Scan(dest...); err != nil {
			logger.DatabaseResult("SELECT", int64(len(profiles)), err)
			logger.ExitMethodWithError("userRepository.ListProfiles", err)
			return nil, err
		}
		p.Birth = stringPtr(birth)
		p.Sex = stringPtr(sex)
		p.School = stringPtr(school)
		p.Member = mRow.toDomain()
		p.Applicant = aRow.toDomain()
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("userRepository.ListProfiles", err)
		return nil, err
	}

	logger.DatabaseResult("SELECT", int64(len(profiles)), nil)
	logger.ExitMethod("userRepository.ListProfiles", "count", len(profiles))
	return profiles, nil
}
