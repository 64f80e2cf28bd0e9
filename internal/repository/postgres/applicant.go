package postgres

import (
	"context"
	"database/sql"
	"time"

	"essentia-backend/internal/domain"
	"essentia-backend/internal/logger"
	"essentia-backend/internal/repository"
)

type applicantRepository struct {
	db *sql.DB
}

func NewApplicantRepository(db *sql.DB) repository.ApplicantRepository {
	return &applicantRepository{db: db}
}

func applicantSelectColumns(alias string) string {
	p := alias + "."
	return p + "user_id, " + p + "status, " + p + "application_submitted_at, " + p + "doc_passed_at, " +
		p + "interview_at, " + p + "final_passed_at, " + p + "rejected_at, " + p + "doc_introduction, " +
		p + "doc_motive, " + p + "interview_choice_1, " + p + "interview_choice_2, " + p + "interview_choice_3, " +
		p + "interview_request_at"
}

// applicantRow mirrors the applicants table with every column nullable so it
// can also be scanned from a LEFT JOIN.
type applicantRow struct {
	userID      sql.NullString
	status      sql.NullString
	submittedAt sql.NullTime
	docPassedAt sql.NullTime
	interviewAt sql.NullTime
	finalAt     sql.NullTime
	rejectedAt  sql.NullTime
	intro       sql.NullString
	motive      sql.NullString
	choices     [3]sql.NullTime
	requestAt   sql.NullTime
}

func (r *applicantRow) dest() []any {
	return []any{&r.userID, &r.status, &r.submittedAt, &r.docPassedAt, &r.interviewAt, &r.finalAt,
		&r.rejectedAt, &r.intro, &r.motive, &r.choices[0], &r.choices[1], &r.choices[2], &r.requestAt}
}

func (r *applicantRow) toDomain() *domain.Applicant {
	if !r.userID.Valid {
		return nil
	}
	a := &domain.Applicant{
		UserID:                 r.userID.String,
		RawStatus:              r.status.String,
		Status:                 domain.NormalizeStatus(r.status.String),
		ApplicationSubmittedAt: timePtr(r.submittedAt),
		DocPassedAt:            timePtr(r.docPassedAt),
		InterviewAt:            timePtr(r.interviewAt),
		FinalPassedAt:          timePtr(r.finalAt),
		RejectedAt:             timePtr(r.rejectedAt),
		DocIntroduction:        stringPtr(r.intro),
		DocMotive:              stringPtr(r.motive),
		InterviewRequestAt:     timePtr(r.requestAt),
	}
	for i := range r.choices {
		a.InterviewChoices[i] = timePtr(r.choices[i])
	}
	return a
}

// storedStatus converts a canonical status to its column value; anything
// else is written as NULL.
func storedStatus(s domain.ApplicantStatus) sql.NullString {
	v, ok := s.StorageForm()
	if !ok {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func (r *applicantRepository) GetByUserID(ctx context.Context, userID string) (*domain.Applicant, error) {
	query := `SELECT ` + applicantSelectColumns("a") + ` FROM applicants a WHERE a.user_id = $1`
	var row applicantRow
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(row.dest()...); err != nil {
		return nil, notFound(err)
	}
	return row.toDomain(), nil
}

func (r *applicantRepository) Create(ctx context.Context, a *domain.Applicant) error {
	logger.EnterMethod("applicantRepository.Create", "userID", a.UserID, "status", a.Status)

	query := `INSERT INTO applicants (user_id, status, application_submitted_at, doc_passed_at, interview_at,
	                                  final_passed_at, rejected_at, doc_introduction, doc_motive)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	logger.DatabaseCall("INSERT", "applicants", "userID", a.UserID)

	result, err := r.db.ExecContext(ctx, query, a.UserID, storedStatus(a.Status),
		nullTime(a.ApplicationSubmittedAt), nullTime(a.DocPassedAt), nullTime(a.InterviewAt),
		nullTime(a.FinalPassedAt), nullTime(a.RejectedAt), nullString(a.DocIntroduction), nullString(a.DocMotive))
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "userID", a.UserID)
		logger.ExitMethodWithError("applicantRepository.Create", err, "userID", a.UserID)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	logger.DatabaseResult("INSERT", rowsAffected, nil, "userID", a.UserID)
	logger.ExitMethod("applicantRepository.Create", "userID", a.UserID)
	return nil
}

func (r *applicantRepository) UpdateStatus(ctx context.Context, a *domain.Applicant) error {
	logger.EnterMethod("applicantRepository.UpdateStatus", "userID", a.UserID, "status", a.Status)

	query := `UPDATE applicants
	          SET status = $1, application_submitted_at = $2, doc_passed_at = $3, final_passed_at = $4, rejected_at = $5
	          WHERE user_id = $6`
	logger.DatabaseCall("UPDATE", "applicants", "userID", a.UserID)

	result, err := r.db.ExecContext(ctx, query, storedStatus(a.Status), nullTime(a.ApplicationSubmittedAt),
		nullTime(a.DocPassedAt), nullTime(a.FinalPassedAt), nullTime(a.RejectedAt), a.UserID)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", a.UserID)
		logger.ExitMethodWithError("applicantRepository.UpdateStatus", err, "userID", a.UserID)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	logger.DatabaseResult("UPDATE", rowsAffected, nil, "userID", a.UserID)
	logger.ExitMethod("applicantRepository.UpdateStatus", "userID", a.UserID)
	return nil
}

func (r *applicantRepository) UpdateInterviewChoices(ctx context.Context, userID string, choices [3]*time.Time, requestedAt time.Time) error {
	query := `UPDATE applicants
	          SET interview_choice_1 = $1, interview_choice_2 = $2, interview_choice_3 = $3, interview_request_at = $4
	          WHERE user_id = $5`
	_, err := r.db.ExecContext(ctx, query, nullTime(choices[0]), nullTime(choices[1]), nullTime(choices[2]), requestedAt, userID)
	return err
}

func (r *applicantRepository) ScheduleInterview(ctx context.Context, userID string, interviewAt time.Time) error {
	status, _ := domain.StatusInterviewScheduled.StorageForm()
	query := `UPDATE applicants SET interview_at = $1, status = $2 WHERE user_id = $3`
	result, err := r.db.ExecContext(ctx, query, interviewAt, status, userID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *applicantRepository) ListScheduledInterviews(ctx context.Context, from, to time.Time) ([]domain.ScheduledInterview, error) {
	logger.EnterMethod("applicantRepository.ListScheduledInterviews", "from", from, "to", to)

	status, _ := domain.StatusInterviewScheduled.StorageForm()
	query := `SELECT u.id, u.email, u.name, a.interview_at
	          FROM applicants a
	          JOIN users u ON u.id = a.user_id
	          WHERE a.status = $1 AND a.interview_at >= $2 AND a.interview_at < $3
	          ORDER BY a.interview_at ASC`
	logger.DatabaseCall("SELECT", "applicants JOIN users", "status", status)

	rows, err := r.db.QueryContext(ctx, query, status, from, to)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err)
		logger.ExitMethodWithError("applicantRepository.ListScheduledInterviews", err)
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.ScheduledInterview
	for rows.Next() {
		var si domain.ScheduledInterview
		if err := rows.Scan(&si.UserID, &si.Email, &si.Name, &si.InterviewAt); err != nil {
			logger.ExitMethodWithError("applicantRepository.ListScheduledInterviews", err)
			return nil, err
		}
		interviews = append(interviews, si)
	}

	logger.DatabaseResult("SELECT", int64(len(interviews)), nil)
	logger.ExitMethod("applicantRepository.ListScheduledInterviews", "count", len(interviews))
	return interviews, rows.Err()
}
