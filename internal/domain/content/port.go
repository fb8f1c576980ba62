package content

// Store port (read-only access to the seeded content catalog)
type Store interface {
	Posts() []Post
	GlossaryTerms() []GlossaryTerm
}
