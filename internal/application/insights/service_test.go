package insights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stackked239/bizpulse-api/internal/application"
	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

type stubReportRepo struct {
	domain.ReportRepository
	reports []*domain.Report
}

func (s *stubReportRepo) Latest(_ context.Context, _ string, _ int) ([]*domain.Report, error) {
	return s.reports, nil
}

type stubAssessmentRepo struct {
	domain.AssessmentRepository
	assessments []*domain.Assessment
}

func (s *stubAssessmentRepo) Latest(_ context.Context, _ string, _ int) ([]*domain.Assessment, error) {
	return s.assessments, nil
}

type stubOrderRepo struct {
	orders []*domain.Order
}

func (s *stubOrderRepo) Save(_ context.Context, _ *domain.Order) error { return nil }

func (s *stubOrderRepo) Latest(_ context.Context, _ string, _ int) ([]*domain.Order, error) {
	return s.orders, nil
}

func TestBuildOverview_emptyAccount(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	svc := NewService(&stubReportRepo{}, &stubAssessmentRepo{}, &stubOrderRepo{},
		application.FixedClock{T: now}, 1)

	ov, err := svc.BuildOverview(context.Background(), "u1")
	require.NoError(t, err)

	assert.Nil(t, ov.HealthScore, "no completed reports means no health score, not zero")
	assert.Equal(t, make([]int, 12), ov.WeeklySeries)
	assert.Equal(t, make([]int, 12), ov.MonthlySeries)
	assert.Empty(t, ov.Activity)
	assert.Zero(t, ov.Assessments)
	assert.Zero(t, ov.Orders)
	assert.Zero(t, ov.TotalSpend)
	for _, label := range ScoreLabels {
		assert.Equal(t, CategoryScore{}, ov.CategoryScores[label])
	}
}

func TestBuildOverview_derivesEverythingFromRepos(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	doneAt := now.Add(-time.Hour)

	reports := []*domain.Report{
		{
			ID: "r1", Title: "Q3 Financial Summary", Status: domain.ReportCompleted,
			CreatedAt: now.Add(-24 * time.Hour),
			Summary:   &domain.ReportSummary{OverallScore: 80, CategoryScores: map[string]int{"finance": 74}},
		},
		{
			ID: "r2", Title: "Ops Audit", Status: domain.ReportCompleted,
			Category: domain.CategoryOperations, CreatedAt: now.AddDate(0, -2, 0),
			Summary: &domain.ReportSummary{OverallScore: 60},
		},
		{ID: "r3", Title: "Draft", Status: domain.ReportGenerating, CreatedAt: now},
	}
	assessments := []*domain.Assessment{
		{ID: "a1", Status: domain.AssessmentCompleted, CreatedAt: now.Add(-2 * time.Hour), CompletedAt: &doneAt},
		{ID: "a2", Status: domain.AssessmentInProgress, CreatedAt: now.Add(-3 * time.Hour)},
	}
	orders := []*domain.Order{
		{ID: "o1", Amount: 49.0, Status: domain.OrderCompleted, CreatedAt: now},
		{ID: "o2", Amount: 99.0, Status: domain.OrderRefunded, CreatedAt: now},
	}

	svc := NewService(&stubReportRepo{reports: reports}, &stubAssessmentRepo{assessments: assessments},
		&stubOrderRepo{orders: orders}, application.FixedClock{T: now}, 1)

	ov, err := svc.BuildOverview(context.Background(), "u1")
	require.NoError(t, err)

	require.NotNil(t, ov.HealthScore)
	assert.Equal(t, 70, *ov.HealthScore)

	// real category detail exists, so nothing is synthesized
	assert.Equal(t, CategoryScore{Value: 74}, ov.CategoryScores[LabelFinance])
	assert.False(t, ov.CategoryScores[LabelOperations].Estimated)

	assert.Equal(t, 1, ov.ReportCounts[LabelFinance])
	assert.Equal(t, 1, ov.ReportCounts[LabelOperations])

	assert.Equal(t, 1, ov.WeeklySeries[11], "r1 falls in the current week")
	assert.Equal(t, 1, ov.MonthlySeries[11])
	assert.Equal(t, 1, ov.MonthlySeries[9], "r2 is two calendar months back")

	assert.Equal(t, 1, ov.Assessments, "only completed assessments count")
	assert.Equal(t, 2, ov.Orders)
	assert.Equal(t, 49.0, ov.TotalSpend, "refunded orders do not add to spend")

	require.NotEmpty(t, ov.Activity)
	assert.Equal(t, "r3", ov.Activity[0].ID, "newest entry first")
}

func TestFeed_respectsLimit(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	var reports []*domain.Report
	for i := 0; i < 6; i++ {
		reports = append(reports, &domain.Report{
			ID: domain.ReportID(rune('a' + i)), Status: domain.ReportCompleted,
			CreatedAt: now.Add(time.Duration(-i) * time.Hour),
		})
	}
	svc := NewService(&stubReportRepo{reports: reports}, &stubAssessmentRepo{}, &stubOrderRepo{},
		application.FixedClock{T: now}, 1)

	feed, err := svc.Feed(context.Background(), "u1", 4)
	require.NoError(t, err)
	assert.Len(t, feed, 4)
}
