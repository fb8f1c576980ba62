package render

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

func TestRender_writesStandaloneHTML(t *testing.T) {
	r := NewHTMLRenderer()
	r.dir = t.TempDir()

	res, err := r.Render(context.Background(), domain.RenderRequest{
		ReportID:  "abc-health-check",
		Title:     "June Health Check",
		Narrative: "## Executive Summary\n\nAll good.\n\n## Key Findings\n\n- none",
		Summary:   &domain.ReportSummary{OverallScore: 82},
	})
	require.NoError(t, err)
	defer os.Remove(res.LocalPath)

	assert.Equal(t, "html", res.RawFormat)
	assert.Equal(t, 1, res.PageCount)
	assert.True(t, strings.HasSuffix(res.LocalPath, ".html"))

	body, err := os.ReadFile(res.LocalPath)
	require.NoError(t, err)
	html := string(body)
	assert.Contains(t, html, "<title>June Health Check</title>")
	assert.Contains(t, html, "Overall score: 82/100")
	assert.Contains(t, html, "All good.")
}

func TestRender_escapesMarkup(t *testing.T) {
	r := NewHTMLRenderer()
	r.dir = t.TempDir()

	res, err := r.Render(context.Background(), domain.RenderRequest{
		ReportID:  "x",
		Title:     "<script>alert(1)</script>",
		Narrative: "body",
	})
	require.NoError(t, err)
	defer os.Remove(res.LocalPath)

	body, _ := os.ReadFile(res.LocalPath)
	assert.NotContains(t, string(body), "<script>alert(1)</script>")
}

func TestRender_cancelledContext(t *testing.T) {
	r := NewHTMLRenderer()
	r.dir = t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, domain.RenderRequest{ReportID: "x", Title: "t", Narrative: "n"})
	assert.ErrorIs(t, err, context.Canceled)

	entries, _ := os.ReadDir(r.dir)
	assert.Empty(t, entries, "cancelled renders must not leave files behind")
}

func TestSplitParagraphs(t *testing.T) {
	got := splitParagraphs("a\n\n\n\nb\n\n  \n\nc")
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Empty(t, splitParagraphs(""))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, pageCount(""))
	assert.Equal(t, 1, pageCount("one two three"))
	assert.Equal(t, 2, pageCount(strings.Repeat("word ", wordsPerPage+1)))
}
