package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateReportType(t *testing.T) {
	for _, ok := range []string{"health-check", "deep-dive", "quarterly", "benchmark", "Health-Check"} {
		assert.NoError(t, ValidateReportType(ok), ok)
	}
	for _, bad := range []string{"", "scan", "health check", "drop table"} {
		assert.Error(t, ValidateReportType(bad), bad)
	}
}

func TestValidateReportCategory(t *testing.T) {
	assert.NoError(t, ValidateReportCategory(""), "empty means not set")
	for _, ok := range []string{"finance", "operations", "technology", "hr", "Finance"} {
		assert.NoError(t, ValidateReportCategory(ok), ok)
	}
	assert.Error(t, ValidateReportCategory("marketing"))
}

func TestValidateSearchTerm(t *testing.T) {
	assert.NoError(t, ValidateSearchTerm(""))
	assert.NoError(t, ValidateSearchTerm("cash flow"))
	assert.Error(t, ValidateSearchTerm(strings.Repeat("a", 201)))
	assert.Error(t, ValidateSearchTerm("a\x00b"))
	assert.Error(t, ValidateSearchTerm("line\nbreak"))
}

func TestValidateUserID(t *testing.T) {
	assert.NoError(t, ValidateUserID("acme-co_42"))
	assert.Error(t, ValidateUserID(""))
	assert.Error(t, ValidateUserID("has space"))
	assert.Error(t, ValidateUserID(strings.Repeat("a", 65)))
}

func TestValidateReportID(t *testing.T) {
	assert.NoError(t, ValidateReportID("0f8fad5b-d9cb-469f-a165-70867728950e-health-check"))
	assert.Error(t, ValidateReportID(""))
	assert.Error(t, ValidateReportID("0f8fad5b-d9cb-469f-a165-70867728950e"), "missing type suffix")
	assert.Error(t, ValidateReportID("not-a-uuid-health-check"))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-5))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, 100, ValidateLimit(5000))
}

func TestValidatePageSize(t *testing.T) {
	assert.Equal(t, 10, ValidatePageSize(0))
	assert.Equal(t, 25, ValidatePageSize(25))
	assert.Equal(t, 100, ValidatePageSize(101))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello\x00 "))
	assert.Equal(t, "a\tb", SanitizeString("a\tb\x01"))
}
