package insights

import "time"

// ActivityItem is the normalized shape the dashboard activity feed renders,
// regardless of which entity produced it.
type ActivityItem struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"` // report | assessment
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
