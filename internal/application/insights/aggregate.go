package insights

import (
	"math"
	"regexp"
	"strings"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// Dashboard display labels for the four fixed score categories.
const (
	LabelFinance    = "Finance"
	LabelOperations = "Operations"
	LabelTechnology = "IT/Technology"
	LabelHR         = "HR"
)

// ScoreLabels is the fixed label order the dashboard renders.
var ScoreLabels = []string{LabelFinance, LabelOperations, LabelTechnology, LabelHR}

// CategoryScore is a per-category score with explicit provenance: Estimated
// is true when the value was synthesized from the overall health score
// because no report carried category-level detail.
type CategoryScore struct {
	Value     int  `json:"value"`
	Estimated bool `json:"estimated"`
}

// storedLabel maps the persisted category enum to its display label.
var storedLabel = map[domain.ReportCategory]string{
	domain.CategoryFinance:    LabelFinance,
	domain.CategoryOperations: LabelOperations,
	domain.CategoryTechnology: LabelTechnology,
	domain.CategoryHR:         LabelHR,
}

// titlePatterns is the legacy classification: reports saved before the
// category column existed are bucketed by title keywords. A title may match
// several labels; one matching none counts toward none.
var titlePatterns = map[string]*regexp.Regexp{
	LabelFinance:    regexp.MustCompile(`financ|revenue|cash|profit`),
	LabelOperations: regexp.MustCompile(`operat|efficien|process|supply`),
	LabelTechnology: regexp.MustCompile(`tech|digital|software|\bit\b`),
	LabelHR:         regexp.MustCompile(`\bhr\b|human|employee|talent|workforce`),
}

// synthRanges gives each category its own fixed offset and spread for the
// missing-detail fallback: value = health + base + rand[0, span).
var synthRanges = map[string]struct{ base, span int }{
	LabelFinance:    {-4, 9},
	LabelOperations: {-2, 7},
	LabelTechnology: {-8, 11},
	LabelHR:         {-6, 13},
}

// HealthScore returns the rounded mean of completed reports' overall scores,
// treating a missing summary as 0. Nil when no report has completed — the
// dashboard shows "no data" rather than a fake zero.
func HealthScore(reports []*domain.Report) *int {
	var sum, n int
	for _, r := range reports {
		if r.Status != domain.ReportCompleted {
			continue
		}
		n++
		if r.Summary != nil {
			sum += r.Summary.OverallScore
		}
	}
	if n == 0 {
		return nil
	}
	score := int(math.Round(float64(sum) / float64(n)))
	return &score
}

// ClassifyReport returns the display labels a completed report counts
// toward. The stored category wins when present; otherwise the title
// keyword heuristic applies.
func ClassifyReport(r *domain.Report) []string {
	if label, ok := storedLabel[r.Category]; ok {
		return []string{label}
	}
	title := strings.ToLower(r.Title)
	var out []string
	for _, label := range ScoreLabels {
		if titlePatterns[label].MatchString(title) {
			out = append(out, label)
		}
	}
	return out
}

// ReportCategoryCounts buckets completed reports per business area.
func ReportCategoryCounts(reports []*domain.Report) map[string]int {
	counts := make(map[string]int, len(ScoreLabels))
	for _, label := range ScoreLabels {
		counts[label] = 0
	}
	for _, r := range reports {
		if r.Status != domain.ReportCompleted {
			continue
		}
		for _, label := range ClassifyReport(r) {
			counts[label]++
		}
	}
	return counts
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
