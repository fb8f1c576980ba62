package prompt

import (
	"fmt"
	"sort"
	"strings"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// ComposeLocalNarrative builds a report narrative without calling an AI
// provider. It is the offline fallback used when no API key is configured:
// deterministic, conservative, and schema-identical to the AI output so the
// renderer does not care which writer produced it.
func ComposeLocalNarrative(req domain.NarrativeRequest) string {
	var b strings.Builder

	b.WriteString("## Executive Summary\n\n")
	if req.Summary != nil {
		fmt.Fprintf(&b, "This %s assessment scored the business %d out of 100 overall. ", reportLabel(req.ReportType), req.Summary.OverallScore)
		b.WriteString(tierSentence(req.Summary.OverallScore))
	} else {
		fmt.Fprintf(&b, "This %s assessment was generated without quantitative scores; findings below are qualitative and based on the company profile provided.", reportLabel(req.ReportType))
	}
	if req.CompanyProfile != "" {
		fmt.Fprintf(&b, " Profile on file: %s.", strings.TrimRight(req.CompanyProfile, "."))
	}
	b.WriteString("\n\n## Key Findings\n\n")

	findings := buildFindings(req.Summary)
	for _, f := range findings {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	b.WriteString("\n## Recommendations\n\n")
	for _, r := range buildRecommendations(req.Summary) {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	b.WriteString("\n## Next Steps\n\n")
	b.WriteString("Review the findings above with your team, pick the single lowest-scoring area, and schedule a follow-up assessment next quarter to measure movement.\n")
	return b.String()
}

func reportLabel(t string) string {
	if t == "" {
		return "business health"
	}
	return strings.ReplaceAll(t, "_", " ")
}

func tierSentence(score int) string {
	switch {
	case score >= 80:
		return "The business is performing well across the assessed areas; the priority is protecting what works."
	case score >= 60:
		return "The business is fundamentally sound with clear improvement opportunities in the weaker areas below."
	case score >= 40:
		return "Several assessed areas need attention; addressing the lowest-scoring one first will have the largest effect."
	default:
		return "The assessment indicates significant risk across multiple areas; immediate focus is recommended."
	}
}

func buildFindings(s *domain.ReportSummary) []string {
	if s == nil || len(s.CategoryScores) == 0 {
		return []string{
			"No category-level scores were supplied with this assessment.",
			"Qualitative review suggests starting with a full business health questionnaire to establish a baseline.",
		}
	}
	// Sort categories ascending by score so the weakest lead the list.
	type cs struct {
		name  string
		score int
	}
	cats := make([]cs, 0, len(s.CategoryScores))
	for name, v := range s.CategoryScores {
		cats = append(cats, cs{name, v})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].score != cats[j].score {
			return cats[i].score < cats[j].score
		}
		return cats[i].name < cats[j].name
	})

	out := make([]string, 0, len(cats))
	for _, c := range cats {
		switch {
		case c.score < 50:
			out = append(out, fmt.Sprintf("%s scored %d/100 — a material weakness that is likely constraining the rest of the business.", c.name, c.score))
		case c.score < 75:
			out = append(out, fmt.Sprintf("%s scored %d/100 — functional today, but below the benchmark for comparable businesses.", c.name, c.score))
		default:
			out = append(out, fmt.Sprintf("%s scored %d/100 — a relative strength worth protecting and building on.", c.name, c.score))
		}
	}
	return out
}

func buildRecommendations(s *domain.ReportSummary) []string {
	base := []string{
		"Establish a monthly review of the metrics behind each assessed category.",
		"Document the top three processes that currently live only in someone's head.",
	}
	if s == nil {
		return append([]string{"Complete a scored assessment to turn these qualitative findings into a trackable baseline."}, base...)
	}
	if s.OverallScore < 60 {
		return append([]string{"Concentrate the next 90 days on the single lowest-scoring category rather than spreading effort across all of them."}, base...)
	}
	return append([]string{"Set a target of +5 points on the overall score for next quarter and assign an owner to each category."}, base...)
}
