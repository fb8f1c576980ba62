package contentstore

import (
	"fmt"

	"github.com/Stackked239/bizpulse-api/internal/domain/content"
)

// Store holds the seeded content catalog, normalized once at construction.
// It is read-only afterwards and safe for concurrent readers.
type Store struct {
	posts    []content.Post
	glossary []content.GlossaryTerm
}

// New builds the store from the package seed data.
func New() *Store {
	return newFrom(seedPosts, seedGlossary)
}

func newFrom(posts []content.Post, glossary []content.GlossaryTerm) *Store {
	s := &Store{
		posts:    make([]content.Post, len(posts)),
		glossary: make([]content.GlossaryTerm, len(glossary)),
	}
	copy(s.posts, posts)
	copy(s.glossary, glossary)

	slugs := make(map[string]bool, len(s.posts))
	for i := range s.posts {
		s.posts[i].Normalize()
		if slugs[s.posts[i].Slug] {
			panic(fmt.Sprintf("contentstore: duplicate post slug %q", s.posts[i].Slug))
		}
		slugs[s.posts[i].Slug] = true
	}

	ids := make(map[int]bool, len(s.glossary))
	for _, t := range s.glossary {
		if ids[t.ID] {
			panic(fmt.Sprintf("contentstore: duplicate glossary id %d", t.ID))
		}
		ids[t.ID] = true
	}
	return s
}

// Posts returns a copy of the post catalog.
func (s *Store) Posts() []content.Post {
	out := make([]content.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// GlossaryTerms returns a copy of the glossary.
func (s *Store) GlossaryTerms() []content.GlossaryTerm {
	out := make([]content.GlossaryTerm, len(s.glossary))
	copy(out, s.glossary)
	return out
}
