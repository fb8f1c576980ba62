package content

import (
	"strings"
	"time"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All Posts"

// Post is a single blog entry in the content catalog.
type Post struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	Date     string `json:"date"` // display string, e.g. "March 12, 2025"
	ReadTime string `json:"read_time"`
	Category string `json:"category"` // raw comma-separated list, kept for display
	Slug     string `json:"slug"`
	Image    string `json:"image,omitempty"`
	AltText  string `json:"alt_text,omitempty"`
	Keywords string `json:"-"` // search-only blob, never rendered

	// Normalized at load time so queries never re-parse the raw strings.
	Categories  []string  `json:"categories"`
	PublishedAt time.Time `json:"published_at"`
}

// dateLayouts covers the display formats used by the seed data.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
}

// Normalize fills the derived fields from the raw category and date strings.
// An unparseable date leaves PublishedAt zero; such posts sort last.
func (p *Post) Normalize() {
	p.Categories = SplitCategories(p.Category)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, p.Date); err == nil {
			p.PublishedAt = t
			break
		}
	}
}

// HasCategory reports whether the normalized category set contains name.
// Comparison is exact (case-sensitive), matching how the catalog lists them.
func (p *Post) HasCategory(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// SplitCategories parses a comma-separated category string into trimmed
// tokens, dropping empties.
func SplitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if c := strings.TrimSpace(part); c != "" {
			out = append(out, c)
		}
	}
	return out
}
