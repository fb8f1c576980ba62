package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

var assessmentColumns = []string{
	"id", "user_id", "status", "company_profile", "current_section", "created_at", "completed_at",
}

type AssessmentRepository struct {
	db *sql.DB
}

func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Save inserts or updates an assessment record
func (r *AssessmentRepository) Save(ctx context.Context, a *domain.Assessment) error {
	user := stringOrDash(a.UserID)
	status := stringOrDash(string(a.Status))
	created := a.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	q, args, err := psql.Insert("assessments").
		Columns(assessmentColumns...).
		Values(a.ID, user, status, a.CompanyProfile, a.CurrentSection, created, a.CompletedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
 status = EXCLUDED.status,
 company_profile = EXCLUDED.company_profile,
 current_section = EXCLUDED.current_section,
 completed_at = EXCLUDED.completed_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// Get by ID + user
func (r *AssessmentRepository) Get(ctx context.Context, user string, id domain.AssessmentID) (*domain.Assessment, error) {
	q, args, err := psql.Select(assessmentColumns...).
		From("assessments").
		Where(sq.Eq{"user_id": user, "id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	row := r.db.QueryRowContext(ctx, q, args...)
	return scanAssessment(row.Scan)
}

// Latest assessments per user
func (r *AssessmentRepository) Latest(ctx context.Context, user string, limit int) ([]*domain.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	return r.list(ctx, user, uint64(limit), 0)
}

// UpdateStatus touches status (and completed_at when terminal)
func (r *AssessmentRepository) UpdateStatus(ctx context.Context, user string, id domain.AssessmentID, status domain.AssessmentStatus) error {
	b := psql.Update("assessments").
		Set("status", status).
		Where(sq.Eq{"user_id": user, "id": id})
	if status == domain.AssessmentCompleted {
		b = b.Set("completed_at", time.Now())
	}
	q, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
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
	return r.list(ctx, user, uint64(pageSize), uint64((page-1)*pageSize))
}

func (r *AssessmentRepository) list(ctx context.Context, user string, limit, offset uint64) ([]*domain.Assessment, error) {
	q, args, err := psql.Select(assessmentColumns...).
		From("assessments").
		Where(sq.Eq{"user_id": user}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
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
