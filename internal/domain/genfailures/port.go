package genfailures

import (
	"context"
)

// Repository defines persistence for generation failures
type Repository interface {
	Save(ctx context.Context, e *GenerationFailure) error
	ListByReport(ctx context.Context, user string, reportID string, limit int) ([]*GenerationFailure, error)
}
