package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportCols = `id, user_id, created_at, report_type, title, status, category,
       file_url, content, overall_score, category_scores, page_count, assessment_id`

// Save insert/update Report record
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	const q = `
INSERT INTO reports
(id, user_id, created_at, report_type, title, status, category,
 file_url, content, overall_score, category_scores, page_count, assessment_id)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 status=VALUES(status), category=VALUES(category),
 file_url=VALUES(file_url), content=VALUES(content),
 overall_score=VALUES(overall_score), category_scores=VALUES(category_scores),
 page_count=VALUES(page_count);
`
	// Ensure non-nullable string fields have safe defaults
	user := stringOrDash(rep.UserID)
	status := stringOrDash(string(rep.Status))
	created := rep.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	overall, catJSON := summaryColumns(rep.Summary)

	_, err := r.db.ExecContext(ctx, q,
		rep.ID, user, created, rep.Type, rep.Title, status, string(rep.Category),
		rep.FileURL, rep.Content, overall, catJSON, rep.PageCount, rep.AssessmentID,
	)
	return err
}

// Get by ID + user
func (r *ReportRepository) Get(ctx context.Context, user string, id domain.ReportID) (*domain.Report, error) {
	q := `SELECT ` + reportCols + ` FROM reports WHERE user_id=? AND id=? LIMIT 1;`
	row := r.db.QueryRowContext(ctx, q, user, id)
	return scanReport(row.Scan)
}

// Latest reports per user
func (r *ReportRepository) Latest(ctx context.Context, user string, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	q := `SELECT ` + reportCols + ` FROM reports WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, user, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// UpdateStatus hanya update kolom status
func (r *ReportRepository) UpdateStatus(ctx context.Context, user string, id domain.ReportID, status domain.ReportStatus) error {
	const q = `UPDATE reports SET status = ? WHERE user_id = ? AND id = ?;`
	_, err := r.db.ExecContext(ctx, q, status, user, id)
	return err
}

// UpdateResult update hasil generation (status, file_url, page_count, summary)
func (r *ReportRepository) UpdateResult(ctx context.Context, user string, id domain.ReportID, status domain.ReportStatus, fileURL string, pageCount int, summary *domain.ReportSummary) error {
	const q = `
UPDATE reports
SET status = ?,
    file_url = ?,
    page_count = ?,
    overall_score = ?,
    category_scores = ?
WHERE user_id = ? AND id = ?;`
	overall, catJSON := summaryColumns(summary)
	_, err := r.db.ExecContext(ctx, q, status, fileURL, pageCount, overall, catJSON, user, id)
	return err
}

// Paginate with offset + limit (classic pagination)
func (r *ReportRepository) Paginate(ctx context.Context, user string, page, pageSize int, filters map[string]interface{}) (domain.PaginatedReports, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query := `SELECT ` + reportCols + ` FROM reports WHERE user_id=?`
	args := []interface{}{user}
	query, args = appendReportFilters(query, args, filters)
	query += "\n ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.PaginatedReports{}, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	reports, err := collectReports(rows)
	if err != nil {
		return domain.PaginatedReports{}, err
	}

	total, err := r.Count(ctx, user, filters)
	if err != nil {
		return domain.PaginatedReports{}, fmt.Errorf("getting total count: %w", err)
	}

	return domain.PaginatedReports{
		Data:       reports,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

// Cursor-based pagination (after cursorTime, cursorID)
func (r *ReportRepository) Cursor(ctx context.Context, user string, cursorTime time.Time, cursorID string, pageSize int) ([]*domain.Report, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	q := `SELECT ` + reportCols + `
FROM reports
WHERE user_id=?
  AND (created_at < ? OR (created_at = ? AND id < ?))
ORDER BY created_at DESC, id DESC
LIMIT ?;`
	rows, err := r.db.QueryContext(ctx, q, user, cursorTime, cursorTime, cursorID, pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// Count returns the total number of records matching the given filters
func (r *ReportRepository) Count(ctx context.Context, user string, filters map[string]interface{}) (int64, error) {
	query := "SELECT COUNT(*) FROM reports WHERE user_id = ?"
	args := []interface{}{user}
	query, args = appendReportFilters(query, args, filters)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func appendReportFilters(query string, args []interface{}, filters map[string]interface{}) (string, []interface{}) {
	if filters == nil {
		return query, args
	}
	for key, value := range filters {
		switch key {
		case "type":
			query += " AND report_type = ?"
			args = append(args, value)
		case "status":
			query += " AND status = ?"
			args = append(args, value)
		case "category":
			query += " AND category = ?"
			args = append(args, value)
		case "title":
			// LIKE with wildcards - escape input to prevent pattern injection
			query += " AND title LIKE ?"
			term, _ := value.(string)
			args = append(args, "%"+escapeLikePattern(term)+"%")
		}
	}
	return query, args
}

func summaryColumns(s *domain.ReportSummary) (interface{}, interface{}) {
	if s == nil {
		return nil, nil
	}
	var catJSON interface{}
	if len(s.CategoryScores) > 0 {
		if b, err := json.Marshal(s.CategoryScores); err == nil {
			catJSON = string(b)
		}
	}
	return s.OverallScore, catJSON
}

type scanFunc func(dest ...interface{}) error

func scanReport(scan scanFunc) (*domain.Report, error) {
	var rep domain.Report
	var created time.Time
	var category, fileURL, content, assessmentID sql.NullString
	var overall sql.NullInt64
	var catJSON sql.NullString
	var pageCount sql.NullInt64

	if err := scan(
		&rep.ID, &rep.UserID, &created, &rep.Type, &rep.Title, &rep.Status, &category,
		&fileURL, &content, &overall, &catJSON, &pageCount, &assessmentID,
	); err != nil {
		return nil, err
	}
	rep.CreatedAt = created
	rep.Category = domain.ReportCategory(category.String)
	rep.FileURL = fileURL.String
	rep.Content = content.String
	rep.AssessmentID = assessmentID.String
	rep.PageCount = int(pageCount.Int64)

	if overall.Valid || catJSON.Valid {
		s := &domain.ReportSummary{OverallScore: int(overall.Int64)}
		if catJSON.Valid && catJSON.String != "" {
			_ = json.Unmarshal([]byte(catJSON.String), &s.CategoryScores)
		}
		rep.Summary = s
	}
	return &rep, nil
}

func collectReports(rows *sql.Rows) ([]*domain.Report, error) {
	var out []*domain.Report
	for rows.Next() {
		rep, err := scanReport(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

// escapeLikePattern escapes special characters in LIKE patterns
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
