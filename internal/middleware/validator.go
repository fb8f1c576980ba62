package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

// ValidateReportType checks if the report type is in the allowed list
func ValidateReportType(reportType string) error {
	allowed := map[string]bool{
		"health-check": true,
		"deep-dive":    true,
		"quarterly":    true,
		"benchmark":    true,
	}

	if !allowed[strings.ToLower(reportType)] {
		return fmt.Errorf("invalid report type: %s (allowed: health-check, deep-dive, quarterly, benchmark)", reportType)
	}
	return nil
}

// ValidateReportCategory checks the stored category value.
func ValidateReportCategory(category string) error {
	if category == "" {
		return nil // Optional field
	}
	allowed := map[string]bool{
		"finance":    true,
		"operations": true,
		"technology": true,
		"hr":         true,
	}
	if !allowed[strings.ToLower(category)] {
		return fmt.Errorf("invalid category: %s (allowed: finance, operations, technology, hr)", category)
	}
	return nil
}

// ValidateSearchTerm rejects terms that would break out of a LIKE query or
// bloat logs. Empty is fine: it means no filter.
func ValidateSearchTerm(term string) error {
	if term == "" {
		return nil
	}
	if len(term) > 200 {
		return fmt.Errorf("search term too long (max 200 chars)")
	}
	dangerous := []string{"\x00", "\n", "\r"}
	for _, d := range dangerous {
		if strings.Contains(term, d) {
			return fmt.Errorf("invalid characters in search term")
		}
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateUserID validates user ID format
func ValidateUserID(user string) error {
	if user == "" {
		return fmt.Errorf("user ID cannot be empty")
	}

	// Allow alphanumeric, dash, underscore (max 64 chars)
	pattern := `^[a-zA-Z0-9_-]{1,64}$`
	matched, _ := regexp.MatchString(pattern, user)
	if !matched {
		return fmt.Errorf("invalid user ID format (alphanumeric, dash, underscore only, max 64 chars)")
	}

	return nil
}

// ValidateReportID validates report ID format
func ValidateReportID(reportID string) error {
	if reportID == "" {
		return fmt.Errorf("report ID cannot be empty")
	}

	// UUID pattern with type suffix: uuid-type
	pattern := `^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}-.+$`
	matched, _ := regexp.MatchString(pattern, reportID)
	if !matched {
		return fmt.Errorf("invalid report ID format")
	}

	return nil
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

// ValidatePageSize validates page size for offset pagination
func ValidatePageSize(size int) int {
	if size <= 0 {
		return 10 // default
	}
	if size > 100 {
		return 100 // max page size
	}
	return size
}
