package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, []string{"Finance"}, SplitCategories("Finance"))
	assert.Equal(t, []string{"HR & Leadership", "Operations"}, SplitCategories("HR & Leadership, Operations"))
	assert.Equal(t, []string{"a", "b"}, SplitCategories(" a ,, b , "))
	assert.Empty(t, SplitCategories(""))
}

func TestNormalize_parsesKnownDateLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"March 12, 2025": time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		"Mar 12, 2025":   time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		"2025-03-12":     time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
	for raw, want := range cases {
		p := Post{Date: raw, Category: "Finance"}
		p.Normalize()
		assert.True(t, p.PublishedAt.Equal(want), "date %q parsed to %v", raw, p.PublishedAt)
	}

	p := Post{Date: "not a date", Category: "Finance"}
	p.Normalize()
	assert.True(t, p.PublishedAt.IsZero())
}

func TestHasCategory_exactMatch(t *testing.T) {
	p := Post{Category: "HR & Leadership, Operations"}
	p.Normalize()

	assert.True(t, p.HasCategory("Operations"))
	assert.True(t, p.HasCategory("HR & Leadership"))
	assert.False(t, p.HasCategory("operations"), "matching is case-sensitive")
	assert.False(t, p.HasCategory("HR"))
}
