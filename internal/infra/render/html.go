package render

import (
	"context"
	"fmt"
	"html/template"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// wordsPerPage approximates the print layout used by the dashboard viewer.
const wordsPerPage = 380

// HTMLRenderer writes report documents as standalone HTML files under a
// local temp directory; the artifact store uploads and removes them.
type HTMLRenderer struct {
	dir        string
	randSource *rand.Rand
}

func NewHTMLRenderer() *HTMLRenderer {
	// Dedicated random source to avoid contention on the global one
	src := rand.NewSource(time.Now().UnixNano())
	return &HTMLRenderer{
		dir:        filepath.Join(".", "temp"),
		randSource: rand.New(src),
	}
}

var docTmpl = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Summary}}<p class="score">Overall score: {{.Summary.OverallScore}}/100</p>{{end}}
<div class="narrative">
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}</div>
</body>
</html>
`))

// Render implements insights.Renderer.
func (r *HTMLRenderer) Render(ctx context.Context, req domain.RenderRequest) (domain.RenderResult, error) {
	start := time.Now()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return domain.RenderResult{}, fmt.Errorf("create temp dir: %w", err)
	}
	path := filepath.Join(r.dir, fmt.Sprintf("%s-%d.html", req.ReportID, r.randSource.Int()))

	f, err := os.Create(path)
	if err != nil {
		return domain.RenderResult{}, fmt.Errorf("create artifact: %w", err)
	}

	data := struct {
		Title      string
		Summary    *domain.ReportSummary
		Paragraphs []string
	}{
		Title:      req.Title,
		Summary:    req.Summary,
		Paragraphs: splitParagraphs(req.Narrative),
	}
	if err := docTmpl.Execute(f, data); err != nil {
		f.Close()
		os.Remove(path)
		return domain.RenderResult{}, fmt.Errorf("render report: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return domain.RenderResult{}, err
	}

	if err := ctx.Err(); err != nil {
		os.Remove(path)
		return domain.RenderResult{}, err
	}

	return domain.RenderResult{
		LocalPath:  path,
		RawFormat:  "html",
		PageCount:  pageCount(req.Narrative),
		DurationMS: time.Since(start).Milliseconds(),
	}, nil
}

func splitParagraphs(narrative string) []string {
	blocks := strings.Split(narrative, "\n\n")
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func pageCount(narrative string) int {
	words := len(strings.Fields(narrative))
	pages := (words + wordsPerPage - 1) / wordsPerPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
