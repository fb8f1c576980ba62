package insights

import (
	"time"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// BucketUnit selects the width of a trailing series bucket.
type BucketUnit string

const (
	UnitDay   BucketUnit = "day"
	UnitWeek  BucketUnit = "week"
	UnitMonth BucketUnit = "month" // aligned to calendar months
)

// CompletedSeries partitions completed-report timestamps into n trailing
// buckets ending at now. The most recent bucket is last; empty buckets
// report 0, never omitted.
func CompletedSeries(reports []*domain.Report, n int, unit BucketUnit, now time.Time) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for _, r := range reports {
		if r.Status != domain.ReportCompleted {
			continue
		}
		idx, ok := bucketIndex(r.CreatedAt, now, n, unit)
		if ok {
			out[idx]++
		}
	}
	return out
}

func bucketIndex(t, now time.Time, n int, unit BucketUnit) (int, bool) {
	if t.After(now) {
		return 0, false
	}
	var age int // buckets back from now, 0 = current bucket
	switch unit {
	case UnitMonth:
		age = (now.Year()*12 + int(now.Month())) - (t.Year()*12 + int(t.Month()))
	case UnitWeek:
		age = int(now.Sub(t).Hours()/24) / 7
	default:
		age = int(now.Sub(t).Hours() / 24)
	}
	if age < 0 || age >= n {
		return 0, false
	}
	return n - 1 - age, true
}

// reportActivityTitles / assessmentActivityTitles: fixed status lookup
// tables for feed rendering.
var reportActivityTitles = map[domain.ReportStatus]string{
	domain.ReportGenerating: "Report generation started",
	domain.ReportCompleted:  "Report ready",
	domain.ReportFailed:     "Report generation failed",
}

var assessmentActivityTitles = map[domain.AssessmentStatus]string{
	domain.AssessmentInProgress: "Assessment in progress",
	domain.AssessmentProcessing: "Assessment processing",
	domain.AssessmentCompleted:  "Assessment completed",
}

// ActivityFeed merges a bounded prefix of reports and assessments into a
// normalized feed, newest first, truncated to limit.
func ActivityFeed(reports []*domain.Report, assessments []*domain.Assessment, limit int) []domain.ActivityItem {
	if limit <= 0 {
		limit = 10
	}

	items := make([]domain.ActivityItem, 0, limit*2)
	for i, r := range reports {
		if i >= limit {
			break
		}
		items = append(items, domain.ActivityItem{
			ID:          string(r.ID),
			Type:        "report",
			Title:       reportActivityTitles[r.Status],
			Description: r.Title,
			Timestamp:   r.CreatedAt,
		})
	}
	for i, a := range assessments {
		if i >= limit {
			break
		}
		ts := a.CreatedAt
		if a.CompletedAt != nil {
			ts = *a.CompletedAt
		}
		items = append(items, domain.ActivityItem{
			ID:          string(a.ID),
			Type:        "assessment",
			Title:       assessmentActivityTitles[a.Status],
			Description: a.CompanyProfile,
			Timestamp:   ts,
		})
	}

	// insertion sort by timestamp desc; inputs are small bounded prefixes
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].Timestamp.After(items[j-1].Timestamp); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
