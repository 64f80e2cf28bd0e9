package postgres

import (
	"context"
	"database/sql"
	"errors"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository"
)

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

type memberRow struct {
	userID    sql.NullString
	org       sql.NullString
	code      sql.NullString
	president sql.NullBool
	role      sql.NullString
	joinedAt  sql.NullTime
}

func (r *memberRow) toDomain() *domain.Member {
	if !r.userID.Valid {
		return nil
	}
	return &domain.Member{
		UserID:     r.userID.String,
		Org:        stringPtr(r.org),
		MemberCode: stringPtr(r.code),
		President:  r.president.Bool,
		Role:       stringPtr(r.role),
		JoinedAt:   timePtr(r.joinedAt),
	}
}

func (r *memberRepository) GetByUserID(ctx context.Context, userID string) (*domain.Member, error) {
	query := `SELECT user_id, org, member_code, president, role, joined_at FROM members WHERE user_id = $1`
	var row memberRow
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&row.userID, &row.org, &row.code, &row.president, &row.role, &row.joinedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return row.toDomain(), nil
}

func (r *memberRepository) Create(ctx context.Context, m *domain.Member) error {
	logger.EnterMethod("memberRepository.Create", "userID", m.UserID, "president", m.President)

	query := `INSERT INTO members (user_id, org, member_code, president, role, joined_at) VALUES ($1, $2, $3, $4, $5, $6)`
	logger.DatabaseCall("INSERT", "members", "userID", m.UserID)

	_, err := r.db.ExecContext(ctx, query, m.UserID, nullString(m.Org), nullString(m.MemberCode), m.President, nullString(m.Role), nullTime(m.JoinedAt))
	logger.DatabaseResult("INSERT", 1, err, "userID", m.UserID)
	if err != nil {
		logger.ExitMethodWithError("memberRepository.Create", err, "userID", m.UserID)
		return err
	}

	logger.ExitMethod("memberRepository.Create", "userID", m.UserID)
	return nil
}

func (r *memberRepository) Update(ctx context.Context, m *domain.Member) error {
	query := `UPDATE members SET org = $1, member_code = $2, president = $3 WHERE user_id = $4`
	_, err := r.db.ExecContext(ctx, query, nullString(m.Org), nullString(m.MemberCode), m.President, m.UserID)
	return err
}

func (r *memberRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM members WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *memberRepository) MaxCode(ctx context.Context, president bool) (string, error) {
	logger.EnterMethod("memberRepository.MaxCode", "president", president)

	// Only all-digit codes count; among those, longer strings are larger numbers.
	query := `SELECT member_code FROM members
	          WHERE president = $1 AND member_code IS NOT NULL
	            AND member_code::text ~ '^[0-9]+$'
	          ORDER BY length(member_code::text) DESC, member_code::text DESC
	          LIMIT 1`
	logger.DatabaseCall("SELECT", "members", "president", president)

	var code string
	err := r.db.QueryRowContext(ctx, query, president).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethod("memberRepository.MaxCode", "code", "")
		return "", nil
	}
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "president", president)
		logger.ExitMethodWithError("memberRepository.MaxCode", err)
		return "", err
	}

	logger.ExitMethod("memberRepository.MaxCode", "code", code)
	return code, nil
}

func (r *memberRepository) ListDirectory(ctx context.Context) ([]domain.DirectoryEntry, error) {
	query := `SELECT u.id, u.name, u.email, u.birth, u.sex, u.school, m.org, m.role, m.member_code, m.president
	          FROM members m
	          JOIN users u ON u.id = m.user_id
	          ORDER BY m.member_code ASC NULLS LAST`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.DirectoryEntry
	for rows.Next() {
		var e domain.DirectoryEntry
		var birth, sex, school, org, role, code sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &birth, &sex, &school, &org, &role, &code, &e.President); err != nil {
			return nil, err
		}
		e.Birth = stringPtr(birth)
		e.Sex = stringPtr(sex)
		e.School = stringPtr(school)
		e.Org = stringPtr(org)
		e.Role = stringPtr(role)
		e.MemberCode = stringPtr(code)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *memberRepository) ClearOrg(ctx context.Context, orgName string) (int64, error) {
	query := `UPDATE members SET org = NULL WHERE org = $1`
	result, err := r.db.ExecContext(ctx, query, orgName)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
