package insights

import "time"

// AssessmentID tipe untuk Assessment
type AssessmentID string

// AssessmentStatus enum
type AssessmentStatus string

const (
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentProcessing AssessmentStatus = "processing"
	AssessmentCompleted  AssessmentStatus = "completed"
)

// Aggregate Root: Assessment (questionnaire in progress or finished)
type Assessment struct {
	ID             AssessmentID     `json:"id"`
	UserID         string           `json:"user_id"`
	Status         AssessmentStatus `json:"status"`
	CompanyProfile string           `json:"company_profile,omitempty"`
	CurrentSection int              `json:"current_section"`
	CreatedAt      time.Time        `json:"created_at"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}
