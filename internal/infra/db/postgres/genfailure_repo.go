package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/genfailures"
)

type GenFailureRepository struct {
	db *sql.DB
}

func NewGenFailureRepository(db *sql.DB) *GenFailureRepository { return &GenFailureRepository{db: db} }

func (r *GenFailureRepository) Save(ctx context.Context, e *domain.GenerationFailure) error {
	msg := e.Message
	if strings.TrimSpace(msg) == "" {
		msg = "-"
	}
	details := e.DetailsJSON
	if strings.TrimSpace(details) == "" {
		details = "{}"
	} else {
		// ensure valid json; if invalid, wrap as string field
		var js any
		if json.Unmarshal([]byte(details), &js) != nil {
			b, _ := json.Marshal(map[string]string{"raw": details})
			details = string(b)
		}
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	q, args, err := psql.Insert("report_generation_failures").
		Columns("user_id", "report_id", "report_type", "phase", "message", "details_json", "created_at").
		Values(stringOrDash(e.UserID), stringOrDash(e.ReportID), stringOrDash(e.ReportType), stringOrDash(e.Phase), msg, details, created).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

func (r *GenFailureRepository) ListByReport(ctx context.Context, user string, reportID string, limit int) ([]*domain.GenerationFailure, error) {
	if limit <= 0 {
		limit = 20
	}
	q, args, err := psql.Select("id", "user_id", "report_id", "report_type", "phase", "message", "details_json", "created_at").
		From("report_generation_failures").
		Where(sq.Eq{"user_id": user, "report_id": reportID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.GenerationFailure
	for rows.Next() {
		var e domain.GenerationFailure
		if err := rows.Scan(&e.ID, &e.UserID, &e.ReportID, &e.ReportType, &e.Phase, &e.Message, &e.DetailsJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
