package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Stackked239/bizpulse-api/internal/application"
	appcatalog "github.com/Stackked239/bizpulse-api/internal/application/catalog"
	appinsights "github.com/Stackked239/bizpulse-api/internal/application/insights"
	appreports "github.com/Stackked239/bizpulse-api/internal/application/reports"
	"github.com/Stackked239/bizpulse-api/internal/config"
	"github.com/Stackked239/bizpulse-api/internal/domain/genfailures"
	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
	aiopenai "github.com/Stackked239/bizpulse-api/internal/infra/ai/openai"
	"github.com/Stackked239/bizpulse-api/internal/infra/contentstore"
	mysqlp "github.com/Stackked239/bizpulse-api/internal/infra/db/mysql"
	postgresp "github.com/Stackked239/bizpulse-api/internal/infra/db/postgres"
	"github.com/Stackked239/bizpulse-api/internal/infra/httpserver"
	"github.com/Stackked239/bizpulse-api/internal/infra/render"
	minioStore "github.com/Stackked239/bizpulse-api/internal/infra/storage"
	"github.com/Stackked239/bizpulse-api/internal/middleware"
)

func main() {
	// path config.yaml (CONFIG_PATH override handled in Load)
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect DB sesuai driver
	var (
		db          interface{ Close() error }
		reports     domain.ReportRepository
		assessments domain.AssessmentRepository
		orders      domain.OrderRepository
		failures    genfailures.Repository
		healthDB    middleware.HealthChecker
	)
	switch cfg.Database.Driver {
	case "postgres":
		conn, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		db = conn
		reports = postgresp.NewReportRepository(conn)
		assessments = postgresp.NewAssessmentRepository(conn)
		orders = postgresp.NewOrderRepository(conn)
		failures = postgresp.NewGenFailureRepository(conn)
		healthDB = &middleware.DatabaseHealthChecker{DB: conn}
	default:
		conn, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		db = conn
		reports = mysqlp.NewReportRepository(conn)
		assessments = mysqlp.NewAssessmentRepository(conn)
		orders = mysqlp.NewOrderRepository(conn)
		failures = mysqlp.NewGenFailureRepository(conn)
		healthDB = &middleware.DatabaseHealthChecker{DB: conn}
	}
	defer db.Close()

	// init minio
	artifacts, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// narrative writer: OpenAI kalau ada API key, kalau nggak pakai local
	var narrative domain.NarrativeClient
	if cfg.OpenAI.APIKey != "" {
		narrative = aiopenai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	} else {
		narrative = aiopenai.LocalWriter{}
	}

	// embedded content catalog
	catalog := contentstore.New()

	// init services
	catalogSvc := &appcatalog.Service{Store: catalog}
	insightsSvc := appinsights.NewService(reports, assessments, orders,
		application.SystemClock{}, time.Now().UnixNano())
	reportsSvc := &appreports.Service{
		Repo:        reports,
		Assessments: assessments,
		Narrative:   narrative,
		Renderer:    render.NewHTMLRenderer(),
		Artifacts:   artifacts,
		Failures:    failures,
		Clock:       application.SystemClock{},
	}

	// init router + middleware chain
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	if len(cfg.Auth.Keys) > 0 {
		mux.Use(middleware.APIKeyAuth(cfg.Auth.Keys))
		mux.Use(middleware.RequireValidUser)
	}

	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Get("/healthz", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": healthDB,
		"content":  &middleware.ContentHealthChecker{Count: func() int { return len(catalog.Posts()) }},
	}))
	mux.Mount("/", httpserver.NewRouter(catalogSvc, insightsSvc, reportsSvc))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
