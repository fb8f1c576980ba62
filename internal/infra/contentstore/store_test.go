package contentstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stackked239/bizpulse-api/internal/domain/content"
)

func TestNew_normalizesSeedData(t *testing.T) {
	s := New()
	posts := s.Posts()
	require.NotEmpty(t, posts)

	for _, p := range posts {
		assert.NotEmpty(t, p.Categories, "post %q has no parsed categories", p.Slug)
		assert.False(t, p.PublishedAt.IsZero(), "post %q has an unparseable date %q", p.Slug, p.Date)
	}
}

func TestNewFrom_panicsOnDuplicateSlug(t *testing.T) {
	posts := []content.Post{
		{Title: "a", Slug: "dup", Date: "January 2, 2025", Category: "Finance"},
		{Title: "b", Slug: "dup", Date: "January 3, 2025", Category: "Finance"},
	}
	assert.Panics(t, func() { newFrom(posts, nil) })
}

func TestNewFrom_panicsOnDuplicateGlossaryID(t *testing.T) {
	glossary := []content.GlossaryTerm{
		{ID: 1, Term: "a", Category: content.GlossaryFinancial},
		{ID: 1, Term: "b", Category: content.GlossaryOperations},
	}
	assert.Panics(t, func() { newFrom(nil, glossary) })
}

func TestNewFrom_unparseableDateLeavesZeroTime(t *testing.T) {
	posts := []content.Post{
		{Title: "a", Slug: "a", Date: "sometime soon", Category: "Finance"},
	}
	s := newFrom(posts, nil)
	assert.Equal(t, time.Time{}, s.Posts()[0].PublishedAt)
}

func TestPosts_returnsACopy(t *testing.T) {
	s := New()
	first := s.Posts()
	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", s.Posts()[0].Title)
}

func TestGlossaryTerms_duplicateTermsHaveDistinctIDs(t *testing.T) {
	s := New()
	byTerm := map[string][]int{}
	for _, g := range s.GlossaryTerms() {
		byTerm[g.Term] = append(byTerm[g.Term], g.ID)
	}
	// the intentional duplicates stay distinct entries
	assert.Len(t, byTerm["EBITDA"], 2)
	assert.Len(t, byTerm["Customer Journey"], 2)
	assert.Len(t, byTerm["Digital Transformation"], 2)
}
