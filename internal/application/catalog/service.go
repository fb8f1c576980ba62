package catalog

import (
	"sort"
	"strings"

	"github.com/Stackked239/bizpulse-api/internal/domain/content"
)

// Service implements the blog and glossary query use-cases over the static
// content store. All methods are pure reads; the store is never mutated.
type Service struct {
	Store content.Store
}

// Categories returns "All Posts" followed by every distinct post category in
// alphabetical order. Deduplication is case-sensitive, no normalization.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)
	for _, p := range s.Store.Posts() {
		for _, c := range p.Categories {
			seen[c] = true
		}
	}
	cats := make([]string, 0, len(seen)+1)
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return append([]string{content.CategoryAll}, cats...)
}

// SearchPosts filters the catalog by category (exact match against the
// parsed category set; empty or "All Posts" means no filter) and by a
// case-insensitive substring search over title, excerpt, category, author,
// alt text and keywords. Results are sorted by publication date descending;
// ties keep catalog order. No match yields an empty slice, never an error.
func (s *Service) SearchPosts(term, category string) []content.Post {
	posts := s.Store.Posts()

	filtered := make([]content.Post, 0, len(posts))
	needle := strings.ToLower(term)
	for _, p := range posts {
		if category != "" && category != content.CategoryAll && !p.HasCategory(category) {
			continue
		}
		if needle != "" && !postMatches(p, needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PublishedAt.After(filtered[j].PublishedAt)
	})
	return filtered
}

// PostBySlug looks a post up by its unique slug.
func (s *Service) PostBySlug(slug string) (content.Post, error) {
	for _, p := range s.Store.Posts() {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.Post{}, content.ErrNotFound
}

// GlossaryCategories returns the distinct glossary categories in catalog
// order (first occurrence wins).
func (s *Service) GlossaryCategories() []string {
	seen := make(map[content.GlossaryCategory]bool)
	var out []string
	for _, t := range s.Store.GlossaryTerms() {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, string(t.Category))
		}
	}
	return out
}

// SearchGlossary filters glossary terms by category (exact, empty = all) and
// a case-insensitive substring search over term and definition. Duplicate
// terms under different categories are distinct entries and both returned.
func (s *Service) SearchGlossary(term, category string) []content.GlossaryTerm {
	needle := strings.ToLower(term)
	var out []content.GlossaryTerm
	for _, t := range s.Store.GlossaryTerms() {
		if category != "" && string(t.Category) != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Term), needle) &&
			!strings.Contains(strings.ToLower(t.Definition), needle) {
			continue
		}
		out = append(out, t)
	}
	if out == nil {
		out = []content.GlossaryTerm{}
	}
	return out
}

func postMatches(p content.Post, needle string) bool {
	for _, field := range []string{p.Title, p.Excerpt, p.Category, p.Author, p.AltText, p.Keywords} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
