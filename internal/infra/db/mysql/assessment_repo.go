package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

type AssessmentRepository struct {
	db *sql.DB
}

func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Save insert/update Assessment record
func (r *AssessmentRepository) Save(ctx context.Context, a *domain.Assessment) error {
	const q = `
INSERT INTO assessments
  (id, user_id, status, company_profile, current_section, created_at, completed_at)
VALUES (?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  status=VALUES(status), company_profile=VALUES(company_profile),
  current_section=VALUES(current_section), completed_at=VALUES(completed_at);
`
	user := stringOrDash(a.UserID)
	status := stringOrDash(string(a.Status))
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, a.ID, user, status, a.CompanyProfile, a.CurrentSection, created, a.CompletedAt)
	return err
}

// Get by ID + user
func (r *AssessmentRepository) Get(ctx context.Context, user string, id domain.AssessmentID) (*domain.Assessment, error) {
	const q = `
SELECT id, user_id, status, company_profile, current_section, created_at, completed_at
FROM assessments
WHERE user_id=? AND id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, user, id)
	return scanAssessment(row.Scan)
}

// Latest assessments per user
func (r *AssessmentRepository) Latest(ctx context.Context, user string, limit int) ([]*domain.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, user_id, status, company_profile, current_section, created_at, completed_at
FROM assessments
WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, user, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus hanya update kolom status (plus completed_at on completion)
func (r *AssessmentRepository) UpdateStatus(ctx context.Context, user string, id domain.AssessmentID, status domain.AssessmentStatus) error {
	if status == domain.AssessmentCompleted {
		const q = `UPDATE assessments SET status = ?, completed_at = ? WHERE user_id = ? AND id = ?;`
		_, err := r.db.ExecContext(ctx, q, status, time.Now(), user, id)
		return err
	}
	const q = `UPDATE assessments SET status = ? WHERE user_id = ? AND id = ?;`
	_, err := r.db.ExecContext(ctx, q, status, user, id)
	return err
}

// Paginate with offset + limit
func (r *AssessmentRepository) Paginate(ctx context.Context, user string, page, pageSize int) ([]*domain.Assessment, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, user_id, status, company_profile, current_section, created_at, completed_at
FROM assessments
WHERE user_id=?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?;
`
	rows, err := r.db.QueryContext(ctx, q, user, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssessment(scan scanFunc) (*domain.Assessment, error) {
	var a domain.Assessment
	var profile sql.NullString
	var completed sql.NullTime
	if err := scan(&a.ID, &a.UserID, &a.Status, &profile, &a.CurrentSection, &a.CreatedAt, &completed); err != nil {
		return nil, err
	}
	a.CompanyProfile = profile.String
	if completed.Valid {
		t := completed.Time
		a.CompletedAt = &t
	}
	return &a, nil
}
