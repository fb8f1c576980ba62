package content

// GlossaryCategory enumerates the fixed glossary groupings.
type GlossaryCategory string

const (
	GlossaryFinancial  GlossaryCategory = "Financial Metrics"
	GlossaryOperations GlossaryCategory = "Operations & Efficiency"
	GlossaryTechnology GlossaryCategory = "Technology & Digital"
	GlossaryHR         GlossaryCategory = "Human Resources"
	GlossaryMarketing  GlossaryCategory = "Sales & Marketing"
	GlossaryStrategy   GlossaryCategory = "Strategy & Growth"
)

// GlossaryTerm is a single business-term definition. Terms are not unique
// across categories: the same term may appear twice under different IDs as
// intentionally distinct category-scoped entries.
type GlossaryTerm struct {
	ID             int              `json:"id"`
	Term           string           `json:"term"`
	Category       GlossaryCategory `json:"category"`
	Definition     string           `json:"definition"`
	Formula        string           `json:"formula,omitempty"`
	WhyItMatters   string           `json:"why_it_matters"`
	SMBApplication string           `json:"smb_application"`
}
