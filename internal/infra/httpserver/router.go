package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appcatalog "github.com/Stackked239/bizpulse-api/internal/application/catalog"
	appinsights "github.com/Stackked239/bizpulse-api/internal/application/insights"
	appreports "github.com/Stackked239/bizpulse-api/internal/application/reports"
	"github.com/Stackked239/bizpulse-api/internal/domain/content"
	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
	"github.com/Stackked239/bizpulse-api/internal/middleware"
)

type Router struct {
	catalogSvc  *appcatalog.Service
	insightsSvc *appinsights.Service
	reportsSvc  *appreports.Service
}

func NewRouter(catalogSvc *appcatalog.Service, insightsSvc *appinsights.Service, reportsSvc *appreports.Service) http.Handler {
	r := &Router{catalogSvc: catalogSvc, insightsSvc: insightsSvc, reportsSvc: reportsSvc}
	mux := chi.NewRouter()

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// public content routes (no user scope)
	mux.Route("/v1/blog", func(rt chi.Router) {
		rt.Get("/posts", r.wrap(r.handleBlogPosts))
		rt.Get("/posts/{slug}", r.wrap(r.handleBlogPost))
		rt.Get("/categories", r.wrap(r.handleBlogCategories))
	})
	mux.Route("/v1/glossary", func(rt chi.Router) {
		rt.Get("/", r.wrap(r.handleGlossary))
		rt.Get("/categories", r.wrap(r.handleGlossaryCategories))
	})

	mux.Route("/v1/{user}", func(rt chi.Router) {
		rt.Get("/dashboard", r.wrap(r.handleDashboard))
		rt.Get("/dashboard/activity", r.wrap(r.handleActivity))
		rt.Get("/assessments", r.wrap(r.handleAssessmentList))
		rt.Get("/assessments/latest", r.wrap(r.handleAssessmentLatest))
		rt.Get("/assessments/{id}", r.wrap(r.handleAssessmentGet))
		rt.Post("/reports", r.wrap(r.handleTriggerReport))
		rt.Get("/reports", r.wrap(r.handleReportList))
		rt.Get("/reports/latest", r.wrap(r.handleReportLatest))
		rt.Get("/reports/{id}", r.wrap(r.handleReportGet))
		rt.Get("/orders", r.wrap(r.handleOrderList))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, sql.ErrNoRows) || errors.Is(err, content.ErrNotFound) || errors.Is(err, domain.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domain.ErrQuotaExceeded) {
				http.Error(w, "narrative quota exceeded", http.StatusTooManyRequests)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// GET /v1/blog/posts?search=&category=
func (r *Router) handleBlogPosts(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	if err := middleware.ValidateSearchTerm(q.Get("search")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	posts := r.catalogSvc.SearchPosts(q.Get("search"), q.Get("category"))
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(posts)
}

// GET /v1/blog/posts/{slug}
func (r *Router) handleBlogPost(w http.ResponseWriter, req *http.Request) error {
	post, err := r.catalogSvc.PostBySlug(chi.URLParam(req, "slug"))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(post)
}

// GET /v1/blog/categories
func (r *Router) handleBlogCategories(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(r.catalogSvc.Categories())
}

// GET /v1/glossary?search=&category=
func (r *Router) handleGlossary(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query()
	if err := middleware.ValidateSearchTerm(q.Get("search")); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	terms := r.catalogSvc.SearchGlossary(q.Get("search"), q.Get("category"))
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(terms)
}

// GET /v1/glossary/categories
func (r *Router) handleGlossaryCategories(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(r.catalogSvc.GlossaryCategories())
}

// GET /v1/{user}/dashboard
func (r *Router) handleDashboard(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	overview, err := r.insightsSvc.BuildOverview(req.Context(), user)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(overview)
}

// GET /v1/{user}/dashboard/activity?limit=10
func (r *Router) handleActivity(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	feed, err := r.insightsSvc.Feed(req.Context(), user, limit)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(feed)
}

// POST /v1/{user}/reports
// Body: {"assessment_id": "...", "type": "...", "title": "...", "category": "...", "summary": {...}}
// Generation runs in the background; the response confirms the queue.
func (r *Router) handleTriggerReport(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")

	var body struct {
		AssessmentID string                `json:"assessment_id"`
		Type         string                `json:"type"`
		Title        string                `json:"title"`
		Category     string                `json:"category"`
		Summary      *domain.ReportSummary `json:"summary"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}
	if body.Type == "" {
		return fmt.Errorf("type is required")
	}
	if err := middleware.ValidateReportType(body.Type); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateReportCategory(body.Category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	cmd := appreports.GenerateCommand{
		UserID:       user,
		AssessmentID: body.AssessmentID,
		Type:         body.Type,
		Title:        body.Title,
		Category:     body.Category,
		Summary:      body.Summary,
	}

	// 🚀 Jalankan di background, biar jalan sampai selesai
	go func() {
		middleware.IncrementReports()
		middleware.IncrementReportsGenerating()
		defer middleware.DecrementReportsGenerating()

		result, err := r.reportsSvc.GenerateUntilDone(cmd)
		if err != nil {
			middleware.IncrementReportsFailed()
			fmt.Printf("background report error for user=%s type=%s: %v\n",
				user, body.Type, err)
			return
		}
		fmt.Printf("report finished: user=%s type=%s file=%s\n",
			user, body.Type, result.FileURL)
	}()

	// 🔙 langsung balikin respons ke client
	resp := map[string]any{
		"status":   "queued",
		"user":     user,
		"type":     body.Type,
		"title":    body.Title,
		"message":  "report generation started in background",
		"queuedAt": time.Now(),
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(resp)
}

// GET /v1/{user}/reports?page=&page_size=&type=&status=&category=&q=
func (r *Router) handleReportList(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	q := req.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size := middleware.ValidatePageSize(atoiDefault(q.Get("page_size")))

	filters := map[string]interface{}{}
	if v := q.Get("type"); v != "" {
		filters["type"] = v
	}
	if v := q.Get("status"); v != "" {
		filters["status"] = v
	}
	if v := q.Get("category"); v != "" {
		filters["category"] = v
	}
	if v := q.Get("q"); v != "" {
		filters["title"] = v
	}

	list, err := r.reportsSvc.Paginate(req.Context(), user, page, size, filters)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/{user}/reports/latest?limit=20
func (r *Router) handleReportLatest(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	list, err := r.reportsSvc.Latest(req.Context(), user, limit)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/{user}/reports/{id}
func (r *Router) handleReportGet(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	id := chi.URLParam(req, "id")

	report, err := r.reportsSvc.Get(req.Context(), user, domain.ReportID(id))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(report)
}

// GET /v1/{user}/assessments?page=&page_size=
func (r *Router) handleAssessmentList(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	q := req.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size := middleware.ValidatePageSize(atoiDefault(q.Get("page_size")))

	list, err := r.insightsSvc.PaginateAssessments(req.Context(), user, page, size)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/{user}/assessments/latest?limit=20
func (r *Router) handleAssessmentLatest(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	list, err := r.insightsSvc.LatestAssessments(req.Context(), user, limit)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/{user}/assessments/{id}
func (r *Router) handleAssessmentGet(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	id := chi.URLParam(req, "id")

	a, err := r.insightsSvc.GetAssessment(req.Context(), user, domain.AssessmentID(id))
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(a)
}

// GET /v1/{user}/orders?limit=20
func (r *Router) handleOrderList(w http.ResponseWriter, req *http.Request) error {
	user := chi.URLParam(req, "user")
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	list, err := r.insightsSvc.LatestOrders(req.Context(), user, limit)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

func atoiDefault(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
