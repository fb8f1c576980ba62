package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/genfailures"
)

type GenFailureRepository struct {
	db *sql.DB
}

func NewGenFailureRepository(db *sql.DB) *GenFailureRepository { return &GenFailureRepository{db: db} }

func (r *GenFailureRepository) Save(ctx context.Context, e *domain.GenerationFailure) error {
	const q = `
INSERT INTO report_generation_failures
  (user_id, report_id, report_type, phase, message, details_json, created_at)
VALUES (?,?,?,?,?,?,?)
`
	user := stringOrDash(e.UserID)
	report := stringOrDash(e.ReportID)
	rtype := stringOrDash(e.ReportType)
	phase := stringOrDash(e.Phase)
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
	_, err := r.db.ExecContext(ctx, q, user, report, rtype, phase, msg, details, created)
	return err
}

func (r *GenFailureRepository) ListByReport(ctx context.Context, user string, reportID string, limit int) ([]*domain.GenerationFailure, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, user_id, report_id, report_type, phase, message, details_json, created_at
FROM report_generation_failures
WHERE user_id = ? AND report_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, user, reportID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.GenerationFailure
	for rows.Next() {
		var e domain.GenerationFailure
		var created time.Time
		if err := rows.Scan(&e.ID, &e.UserID, &e.ReportID, &e.ReportType, &e.Phase, &e.Message, &e.DetailsJSON, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = created
		out = append(out, &e)
	}
	return out, rows.Err()
}
