package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stackked239/bizpulse-api/internal/application"
	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

func completedReport(title string, overall int) *domain.Report {
	return &domain.Report{
		ID:      domain.ReportID(title),
		Title:   title,
		Status:  domain.ReportCompleted,
		Summary: &domain.ReportSummary{OverallScore: overall},
	}
}

func TestHealthScore_noCompletedReportsMeansNil(t *testing.T) {
	assert.Nil(t, HealthScore(nil))
	assert.Nil(t, HealthScore([]*domain.Report{
		{Status: domain.ReportGenerating, Summary: &domain.ReportSummary{OverallScore: 90}},
		{Status: domain.ReportFailed, Summary: &domain.ReportSummary{OverallScore: 90}},
	}))
}

func TestHealthScore_roundedMeanOfCompleted(t *testing.T) {
	reports := []*domain.Report{
		completedReport("a", 70),
		completedReport("b", 80),
		completedReport("c", 90),
		{Status: domain.ReportGenerating, Summary: &domain.ReportSummary{OverallScore: 5}},
	}
	got := HealthScore(reports)
	require.NotNil(t, got)
	assert.Equal(t, 80, *got)
}

func TestHealthScore_missingSummaryCountsAsZero(t *testing.T) {
	reports := []*domain.Report{
		completedReport("a", 80),
		{ID: "b", Status: domain.ReportCompleted}, // no summary
	}
	got := HealthScore(reports)
	require.NotNil(t, got)
	assert.Equal(t, 40, *got)
}

func TestClassifyReport_storedCategoryWins(t *testing.T) {
	r := &domain.Report{
		Title:    "Cash Flow and Technology Review", // keywords for two labels
		Status:   domain.ReportCompleted,
		Category: domain.CategoryHR,
	}
	assert.Equal(t, []string{LabelHR}, ClassifyReport(r))
}

func TestClassifyReport_titleKeywordFallback(t *testing.T) {
	cases := []struct {
		title string
		want  []string
	}{
		{"Q3 Financial Summary", []string{LabelFinance}},
		{"Operational Efficiency Review", []string{LabelOperations}},
		{"Digital Roadmap", []string{LabelTechnology}},
		{"Workforce Planning", []string{LabelHR}},
		{"Revenue and Supply Chain Deep Dive", []string{LabelFinance, LabelOperations}},
		{"General Update", nil},
	}
	for _, tc := range cases {
		r := &domain.Report{Title: tc.title, Status: domain.ReportCompleted}
		assert.Equal(t, tc.want, ClassifyReport(r), "title %q", tc.title)
	}
}

func TestClassifyReport_itKeywordNeedsWordBoundary(t *testing.T) {
	// "profit" contains "it" but must not classify as technology
	r := &domain.Report{Title: "Profit Review", Status: domain.ReportCompleted}
	assert.Equal(t, []string{LabelFinance}, ClassifyReport(r))

	r = &domain.Report{Title: "IT Audit", Status: domain.ReportCompleted}
	assert.Equal(t, []string{LabelTechnology}, ClassifyReport(r))
}

func TestReportCategoryCounts_allLabelsAlwaysPresent(t *testing.T) {
	counts := ReportCategoryCounts(nil)
	assert.Equal(t, map[string]int{
		LabelFinance:    0,
		LabelOperations: 0,
		LabelTechnology: 0,
		LabelHR:         0,
	}, counts)
}

func TestReportCategoryCounts(t *testing.T) {
	reports := []*domain.Report{
		completedReport("Q3 Financial Summary", 80),
		completedReport("Revenue and Supply Chain Deep Dive", 75), // both finance and ops
		{Title: "Cash Crunch", Status: domain.ReportGenerating},   // not completed, ignored
		{Title: "anything", Status: domain.ReportCompleted, Category: domain.CategoryTechnology},
	}
	counts := ReportCategoryCounts(reports)
	assert.Equal(t, 2, counts[LabelFinance])
	assert.Equal(t, 1, counts[LabelOperations])
	assert.Equal(t, 1, counts[LabelTechnology])
	assert.Equal(t, 0, counts[LabelHR])
}

func TestCategoryScores_takesBestPerCategory(t *testing.T) {
	svc := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 1)

	reports := []*domain.Report{
		{Status: domain.ReportCompleted, Summary: &domain.ReportSummary{
			OverallScore:   70,
			CategoryScores: map[string]int{"finance": 62, "operations": 55},
		}},
		{Status: domain.ReportCompleted, Summary: &domain.ReportSummary{
			OverallScore:   75,
			CategoryScores: map[string]int{"finance": 58, "hr": 81},
		}},
	}
	health := 72
	scores := svc.CategoryScores(reports, &health)

	assert.Equal(t, CategoryScore{Value: 62}, scores[LabelFinance])
	assert.Equal(t, CategoryScore{Value: 55}, scores[LabelOperations])
	assert.Equal(t, CategoryScore{Value: 81}, scores[LabelHR])
	assert.Equal(t, CategoryScore{Value: 0}, scores[LabelTechnology])
	for label, cs := range scores {
		assert.False(t, cs.Estimated, "real data must not be tagged estimated: %s", label)
	}
}

func TestCategoryScores_displayLabelKeysAccepted(t *testing.T) {
	svc := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 1)
	reports := []*domain.Report{
		{Status: domain.ReportCompleted, Summary: &domain.ReportSummary{
			CategoryScores: map[string]int{"IT/Technology": 66, "unknown-key": 99},
		}},
	}
	scores := svc.CategoryScores(reports, nil)
	assert.Equal(t, CategoryScore{Value: 66}, scores[LabelTechnology])
	// unknown keys are dropped, not invented
	assert.Equal(t, CategoryScore{Value: 0}, scores[LabelFinance])
}

func TestCategoryScores_synthesizedWhenNoDetail(t *testing.T) {
	svc := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 42)
	health := 70

	scores := svc.CategoryScores(nil, &health)
	for _, label := range ScoreLabels {
		cs := scores[label]
		assert.True(t, cs.Estimated, "%s must be tagged estimated", label)
		rg := synthRanges[label]
		assert.GreaterOrEqual(t, cs.Value, health+rg.base, "%s below range", label)
		assert.Less(t, cs.Value, health+rg.base+rg.span, "%s above range", label)
	}
}

func TestCategoryScores_synthesisIsDeterministicPerSeed(t *testing.T) {
	health := 70
	a := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 7).CategoryScores(nil, &health)
	b := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 7).CategoryScores(nil, &health)
	assert.Equal(t, a, b)
}

func TestCategoryScores_synthesizedValuesClamped(t *testing.T) {
	svc := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 3)

	low := 2
	for _, cs := range svc.CategoryScores(nil, &low) {
		assert.GreaterOrEqual(t, cs.Value, 0)
	}
	high := 99
	for _, cs := range svc.CategoryScores(nil, &high) {
		assert.LessOrEqual(t, cs.Value, 100)
	}
}

func TestCategoryScores_noHealthNoSynthesis(t *testing.T) {
	svc := NewService(nil, nil, nil, application.FixedClock{T: time.Now()}, 1)
	scores := svc.CategoryScores(nil, nil)
	for _, label := range ScoreLabels {
		assert.Equal(t, CategoryScore{}, scores[label])
	}
}
