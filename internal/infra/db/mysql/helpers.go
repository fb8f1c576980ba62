package mysql

import "strings"

// stringOrDash returns "-" when the input is empty/whitespace; several
// columns are NOT NULL and "-" marks an unset value consistently.
func stringOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
