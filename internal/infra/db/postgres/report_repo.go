package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var reportColumns = []string{
	"id", "user_id", "created_at", "report_type", "title", "status", "category",
	"file_url", "content", "overall_score", "category_scores", "page_count", "assessment_id",
}

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Save inserts or updates a report record
func (r *ReportRepository) Save(ctx context.Context, rep *domain.Report) error {
	user := stringOrDash(rep.UserID)
	status := stringOrDash(string(rep.Status))
	created := rep.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	overall, catJSON := summaryColumns(rep.Summary)

	q, args, err := psql.Insert("reports").
		Columns(reportColumns...).
		Values(rep.ID, user, created, rep.Type, rep.Title, status, string(rep.Category),
			rep.FileURL, rep.Content, overall, catJSON, rep.PageCount, rep.AssessmentID).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
 status = EXCLUDED.status,
 category = EXCLUDED.category,
 file_url = EXCLUDED.file_url,
 content = EXCLUDED.content,
 overall_score = EXCLUDED.overall_score,
 category_scores = EXCLUDED.category_scores,
 page_count = EXCLUDED.page_count`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// Get by ID + user
func (r *ReportRepository) Get(ctx context.Context, user string, id domain.ReportID) (*domain.Report, error) {
	q, args, err := psql.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"user_id": user, "id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	row := r.db.QueryRowContext(ctx, q, args...)
	return scanReport(row.Scan)
}

// Latest reports per user
func (r *ReportRepository) Latest(ctx context.Context, user string, limit int) ([]*domain.Report, error) {
	if limit <= 0 {
		limit = 20
	}
	q, args, err := psql.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"user_id": user}).
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
	return collectReports(rows)
}

// UpdateStatus only touches the status column
func (r *ReportRepository) UpdateStatus(ctx context.Context, user string, id domain.ReportID, status domain.ReportStatus) error {
	q, args, err := psql.Update("reports").
		Set("status", status).
		Where(sq.Eq{"user_id": user, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// UpdateResult stores the generation outcome
func (r *ReportRepository) UpdateResult(ctx context.Context, user string, id domain.ReportID, status domain.ReportStatus, fileURL string, pageCount int, summary *domain.ReportSummary) error {
	overall, catJSON := summaryColumns(summary)
	q, args, err := psql.Update("reports").
		Set("status", status).
		Set("file_url", fileURL).
		Set("page_count", pageCount).
		Set("overall_score", overall).
		Set("category_scores", catJSON).
		Where(sq.Eq{"user_id": user, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}

// Paginate with offset + limit and optional filters
func (r *ReportRepository) Paginate(ctx context.Context, user string, page, pageSize int, filters map[string]interface{}) (domain.PaginatedReports, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	base := psql.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"user_id": user})
	base = applyReportFilters(base, filters)

	q, args, err := base.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return domain.PaginatedReports{}, fmt.Errorf("build select: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
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
	q, args, err := psql.Select(reportColumns...).
		From("reports").
		Where(sq.Eq{"user_id": user}).
		Where(sq.Or{
			sq.Lt{"created_at": cursorTime},
			sq.And{sq.Eq{"created_at": cursorTime}, sq.Lt{"id": cursorID}},
		}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// Count matching records for pagination metadata
func (r *ReportRepository) Count(ctx context.Context, user string, filters map[string]interface{}) (int64, error) {
	base := psql.Select("COUNT(*)").
		From("reports").
		Where(sq.Eq{"user_id": user})
	base = applyReportFilters(base, filters)

	q, args, err := base.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}
	var count int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func applyReportFilters(b sq.SelectBuilder, filters map[string]interface{}) sq.SelectBuilder {
	if filters == nil {
		return b
	}
	for key, value := range filters {
		switch key {
		case "type":
			b = b.Where(sq.Eq{"report_type": value})
		case "status":
			b = b.Where(sq.Eq{"status": value})
		case "category":
			b = b.Where(sq.Eq{"category": value})
		case "title":
			term, _ := value.(string)
			b = b.Where(sq.ILike{"title": "%" + term + "%"})
		}
	}
	return b
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
	var category, fileURL, content, assessmentID sql.NullString
	var overall, pageCount sql.NullInt64
	var catJSON sql.NullString

	if err := scan(
		&rep.ID, &rep.UserID, &rep.CreatedAt, &rep.Type, &rep.Title, &rep.Status, &category,
		&fileURL, &content, &overall, &catJSON, &pageCount, &assessmentID,
	); err != nil {
		return nil, err
	}
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
