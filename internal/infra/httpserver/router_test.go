package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stackked239/bizpulse-api/internal/application"
	appcatalog "github.com/Stackked239/bizpulse-api/internal/application/catalog"
	appinsights "github.com/Stackked239/bizpulse-api/internal/application/insights"
	appreports "github.com/Stackked239/bizpulse-api/internal/application/reports"
	"github.com/Stackked239/bizpulse-api/internal/domain/content"
	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
	"github.com/Stackked239/bizpulse-api/internal/infra/contentstore"
)

type fakeReportRepo struct {
	domain.ReportRepository
	byID map[domain.ReportID]*domain.Report
}

func (f *fakeReportRepo) Get(_ context.Context, _ string, id domain.ReportID) (*domain.Report, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeReportRepo) Latest(_ context.Context, _ string, _ int) ([]*domain.Report, error) {
	var out []*domain.Report
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportRepo) Save(_ context.Context, r *domain.Report) error {
	f.byID[r.ID] = r
	return nil
}

func (f *fakeReportRepo) UpdateStatus(_ context.Context, _ string, id domain.ReportID, status domain.ReportStatus) error {
	if r, ok := f.byID[id]; ok {
		r.Status = status
	}
	return nil
}

func (f *fakeReportRepo) Paginate(_ context.Context, _ string, page, pageSize int, _ map[string]interface{}) (domain.PaginatedReports, error) {
	list, _ := f.Latest(nil, "", 0)
	return domain.PaginatedReports{Data: list, Page: page, PageSize: pageSize, Total: int64(len(list)), TotalPages: 1}, nil
}

type fakeAssessmentRepo struct {
	domain.AssessmentRepository
	list []*domain.Assessment
}

func (f *fakeAssessmentRepo) Latest(_ context.Context, _ string, _ int) ([]*domain.Assessment, error) {
	return f.list, nil
}

func (f *fakeAssessmentRepo) Paginate(_ context.Context, _ string, _, _ int) ([]*domain.Assessment, error) {
	return f.list, nil
}

func (f *fakeAssessmentRepo) Get(_ context.Context, _ string, id domain.AssessmentID) (*domain.Assessment, error) {
	for _, a := range f.list {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

// unavailableNarrative stops the generation pipeline at its first phase so
// router tests exercise the queueing path without a full pipeline.
type unavailableNarrative struct{}

func (unavailableNarrative) WriteNarrative(_ context.Context, _ domain.NarrativeRequest) (string, error) {
	return "", domain.ErrQuotaExceeded
}

type fakeOrderRepo struct {
	list []*domain.Order
}

func (f *fakeOrderRepo) Save(_ context.Context, _ *domain.Order) error { return nil }

func (f *fakeOrderRepo) Latest(_ context.Context, _ string, _ int) ([]*domain.Order, error) {
	return f.list, nil
}

func newTestHandler(reports *fakeReportRepo) http.Handler {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	assessments := &fakeAssessmentRepo{}
	orders := &fakeOrderRepo{}

	catalogSvc := &appcatalog.Service{Store: contentstore.New()}
	insightsSvc := appinsights.NewService(reports, assessments, orders, application.FixedClock{T: now}, 1)
	reportsSvc := &appreports.Service{
		Repo:      reports,
		Narrative: unavailableNarrative{},
		Clock:     application.FixedClock{T: now},
	}
	return NewRouter(catalogSvc, insightsSvc, reportsSvc)
}

func emptyHandler() http.Handler {
	return newTestHandler(&fakeReportRepo{byID: map[domain.ReportID]*domain.Report{}})
}

func TestRouter_health(t *testing.T) {
	rec := httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_blogCategories(t *testing.T) {
	rec := httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/blog/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var cats []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
	require.NotEmpty(t, cats)
	assert.Equal(t, content.CategoryAll, cats[0])
}

func TestRouter_blogPostsSearchAndFilter(t *testing.T) {
	rec := httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/blog/posts?search=retention&category=Operations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []content.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "employee-retention-cost-of-turnover", posts[0].Slug)
}

func TestRouter_blogPostBySlug(t *testing.T) {
	rec := httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/blog/posts/ebitda-explained-for-owners", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/blog/posts/no-such-slug", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_glossarySearch(t *testing.T) {
	rec := httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/glossary?search=ebitda", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var terms []content.GlossaryTerm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &terms))
	assert.NotEmpty(t, terms)
}

func TestRouter_searchTermValidation(t *testing.T) {
	long := strings.Repeat("a", 201)
	rec := httptest.NewRecorder()
	emptyHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/blog/posts?search="+long, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_dashboard(t *testing.T) {
	reports := &fakeReportRepo{byID: map[domain.ReportID]*domain.Report{
		"r1": {
			ID: "r1", Title: "Q3 Financial Summary", Status: domain.ReportCompleted,
			CreatedAt: time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
			Summary:   &domain.ReportSummary{OverallScore: 80},
		},
	}}
	rec := httptest.NewRecorder()
	newTestHandler(reports).ServeHTTP(rec, httptest.NewRequest("GET", "/v1/acme/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var ov appinsights.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ov))
	require.NotNil(t, ov.HealthScore)
	assert.Equal(t, 80, *ov.HealthScore)
	assert.Len(t, ov.WeeklySeries, 12)
	assert.Len(t, ov.MonthlySeries, 12)
	assert.Equal(t, 1, ov.ReportCounts["Finance"])
	for _, cs := range ov.CategoryScores {
		assert.True(t, cs.Estimated, "no category detail: scores must be synthesized")
	}
}

func TestRouter_reportGet(t *testing.T) {
	reports := &fakeReportRepo{byID: map[domain.ReportID]*domain.Report{
		"r1": {ID: "r1", Title: "Ops Audit", Status: domain.ReportCompleted},
	}}
	h := newTestHandler(reports)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/acme/reports/r1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/acme/reports/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_reportListPaginated(t *testing.T) {
	reports := &fakeReportRepo{byID: map[domain.ReportID]*domain.Report{
		"r1": {ID: "r1", Status: domain.ReportCompleted},
	}}
	rec := httptest.NewRecorder()
	newTestHandler(reports).ServeHTTP(rec, httptest.NewRequest("GET", "/v1/acme/reports?page=1&page_size=10", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page domain.PaginatedReports
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
}

func TestRouter_triggerReportValidation(t *testing.T) {
	h := emptyHandler()

	// missing type
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/acme/reports", strings.NewReader(`{}`))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// unknown type
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/v1/acme/reports", strings.NewReader(`{"type":"scan"}`))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// bad category
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/v1/acme/reports", strings.NewReader(`{"type":"health-check","category":"marketing"}`))
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_triggerReportQueues(t *testing.T) {
	reports := &fakeReportRepo{byID: map[domain.ReportID]*domain.Report{}}
	rec := httptest.NewRecorder()
	body := `{"type":"health-check","title":"June Check","category":"finance"}`
	newTestHandler(reports).ServeHTTP(rec, httptest.NewRequest("POST", "/v1/acme/reports", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp["status"])
	assert.Equal(t, "acme", resp["user"])
	assert.Equal(t, "health-check", resp["type"])
}

func TestRouter_ordersAndAssessments(t *testing.T) {
	h := emptyHandler()

	for _, path := range []string{"/v1/acme/orders", "/v1/acme/assessments", "/v1/acme/assessments/latest", "/v1/acme/dashboard/activity"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/acme/assessments/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
