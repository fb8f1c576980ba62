package prompt

import (
	"fmt"
	"strings"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// GetSystemPrompt provides strict directions for the report narrative.
func GetSystemPrompt() string {
	return `You are a senior small-business consultant writing an assessment report. You must produce plain markdown only (no code fences, no front matter) with exactly these sections, in order:

## Executive Summary
## Key Findings
## Recommendations
## Next Steps

Requirements:
- Ground every claim in the company profile and scores provided; never invent figures.
- Key Findings is a bulleted list, one finding per bullet, strongest evidence first.
- Recommendations must be concrete actions an owner can start within 30 days.
- If scores are not provided, write qualitative findings from the profile alone and say so in the Executive Summary.
- Keep the whole report under 900 words.`
}

// GetUserPrompt builds a compact user message around the request.
func GetUserPrompt(req domain.NarrativeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write the %s report.\n", req.ReportType)
	if req.CompanyProfile != "" {
		fmt.Fprintf(&b, "Company profile: %s\n", req.CompanyProfile)
	}
	if req.Summary != nil {
		fmt.Fprintf(&b, "Overall score: %d/100\n", req.Summary.OverallScore)
		for cat, v := range req.Summary.CategoryScores {
			fmt.Fprintf(&b, "Score %s: %d/100\n", cat, v)
		}
	}
	return b.String()
}
