package genfailures

import "time"

// GenerationFailure represents a persisted report-generation failure entry
type GenerationFailure struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	ReportID    string    `json:"report_id"`
	ReportType  string    `json:"report_type,omitempty"`
	Phase       string    `json:"phase,omitempty"` // narrative | render | upload | save
	Message     string    `json:"message"`
	DetailsJSON string    `json:"details_json,omitempty"` // raw JSON string
	CreatedAt   time.Time `json:"created_at"`
}
