package insights

import (
	"time"
)

// ReportID tipe untuk Report
type ReportID string

// ReportStatus enum
type ReportStatus string

const (
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

// ReportCategory is the stored business-area classification. Legacy rows
// predate the column and carry an empty value; aggregation falls back to
// title keywords for those.
type ReportCategory string

const (
	CategoryFinance    ReportCategory = "finance"
	CategoryOperations ReportCategory = "operations"
	CategoryTechnology ReportCategory = "technology"
	CategoryHR         ReportCategory = "hr"
)

// ReportSummary value object: the scored outcome of an assessment.
type ReportSummary struct {
	OverallScore   int            `json:"overall_score"`
	CategoryScores map[string]int `json:"category_scores,omitempty"`
}

// Aggregate Root: Report
type Report struct {
	ID           ReportID       `json:"id"`
	UserID       string         `json:"user_id"`
	Type         string         `json:"type"`
	Title        string         `json:"title"`
	Status       ReportStatus   `json:"status"`
	Category     ReportCategory `json:"category,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	FileURL      string         `json:"file_url,omitempty"`
	Content      string         `json:"content,omitempty"`
	Summary      *ReportSummary `json:"summary,omitempty"`
	PageCount    int            `json:"page_count,omitempty"`
	AssessmentID string         `json:"assessment_id,omitempty"`
}

// Terminal reports whether the report reached a final status.
func (r *Report) Terminal() bool {
	return r.Status == ReportCompleted || r.Status == ReportFailed
}
