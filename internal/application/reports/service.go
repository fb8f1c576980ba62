package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Stackked239/bizpulse-api/internal/domain/genfailures"
	domain "github.com/Stackked239/bizpulse-api/internal/domain/insights"
)

// Service implements use-cases untuk Report generation.
// Service is designed to be used concurrently and is thread-safe.
type Service struct {
	Repo        domain.ReportRepository
	Assessments domain.AssessmentRepository
	Narrative   domain.NarrativeClient
	Renderer    domain.Renderer
	Artifacts   domain.ArtifactStore
	Failures    genfailures.Repository
	Clock       Clock
}

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

//
// ==== USE CASES ====
//

// Command untuk generate report
type GenerateCommand struct {
	UserID       string
	AssessmentID string
	Type         string
	Title        string
	Category     string
	// Summary is optional: scoring happens upstream when the assessment is
	// processed, and arrives with the trigger request.
	Summary *domain.ReportSummary
}

type GenerateResult struct {
	ID         string                `json:"id"`
	Status     string                `json:"status"`
	FileURL    string                `json:"file_url"`
	PageCount  int                   `json:"page_count"`
	Summary    *domain.ReportSummary `json:"summary,omitempty"`
	DurationMS int64                 `json:"duration_ms"`
}

// GenerateUntilDone → jalanin generation dengan context.Background()
// cocok dipanggil dari goroutine di router supaya gak kena context canceled
func (s *Service) GenerateUntilDone(cmd GenerateCommand) (GenerateResult, error) {
	return s.Generate(context.Background(), cmd)
}

// MarkFailed updates a report row to failed status.
func (s *Service) MarkFailed(user string, id string) error {
	return s.Repo.UpdateStatus(context.Background(), user, domain.ReportID(id), domain.ReportFailed)
}

// Generate runs the pipeline: write narrative → render document → upload
// artifact → save terminal row. Every failed phase is recorded before the
// error is returned.
func (s *Service) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	now := s.Clock.Now()
	id := fmt.Sprintf("%s-%s", uuid.New().String(), cmd.Type)
	summary := cmd.Summary

	// Create an initial row so the dashboard sees the report immediately
	initial := &domain.Report{
		ID:           domain.ReportID(id),
		UserID:       cmd.UserID,
		Type:         cmd.Type,
		Title:        cmd.Title,
		Status:       domain.ReportGenerating,
		Category:     domain.ReportCategory(cmd.Category),
		CreatedAt:    now,
		Summary:      summary,
		AssessmentID: cmd.AssessmentID,
	}
	if err := s.Repo.Save(ctx, initial); err != nil {
		return GenerateResult{ID: id, Status: string(domain.ReportFailed)}, err
	}

	narrative, err := s.Narrative.WriteNarrative(ctx, domain.NarrativeRequest{
		ReportType:     cmd.Type,
		CompanyProfile: s.companyProfile(ctx, cmd),
		Summary:        summary,
	})
	if err != nil {
		s.recordFailure(cmd, id, "narrative", err)
		_ = s.Repo.UpdateStatus(context.Background(), cmd.UserID, domain.ReportID(id), domain.ReportFailed)
		return GenerateResult{ID: id, Status: string(domain.ReportFailed)}, err
	}

	res, err := s.Renderer.Render(ctx, domain.RenderRequest{
		ReportID:  id,
		Title:     cmd.Title,
		Narrative: narrative,
		Summary:   summary,
	})
	if err != nil {
		s.recordFailure(cmd, id, "render", err)
		_ = s.Repo.UpdateStatus(context.Background(), cmd.UserID, domain.ReportID(id), domain.ReportFailed)
		return GenerateResult{ID: id, Status: string(domain.ReportFailed)}, err
	}

	key := fmt.Sprintf("%s/%s/%s", cmd.UserID, cmd.Type, filepath.Base(res.LocalPath))
	url, err := s.Artifacts.UploadAndCleanup(ctx, res.LocalPath, key)
	if err != nil {
		os.Remove(res.LocalPath)
		s.recordFailure(cmd, id, "upload", err)
		_ = s.Repo.UpdateStatus(context.Background(), cmd.UserID, domain.ReportID(id), domain.ReportFailed)
		return GenerateResult{ID: id, Status: string(domain.ReportFailed)}, err
	}

	if err := s.Repo.UpdateResult(ctx, cmd.UserID, domain.ReportID(id), domain.ReportCompleted, url, res.PageCount, summary); err != nil {
		s.recordFailure(cmd, id, "save", err)
		return GenerateResult{ID: id, Status: string(domain.ReportGenerating)}, err
	}

	return GenerateResult{
		ID:         id,
		Status:     string(domain.ReportCompleted),
		FileURL:    url,
		PageCount:  res.PageCount,
		Summary:    summary,
		DurationMS: res.DurationMS,
	}, nil
}

// Latest ambil N report terakhir
func (s *Service) Latest(ctx context.Context, user string, limit int) ([]*domain.Report, error) {
	return s.Repo.Latest(ctx, user, limit)
}

// Get ambil 1 report by id
func (s *Service) Get(ctx context.Context, user string, id domain.ReportID) (*domain.Report, error) {
	return s.Repo.Get(ctx, user, id)
}

// Paginate with optional filters (type, status, category, title search)
func (s *Service) Paginate(ctx context.Context, user string, page, pageSize int, filters map[string]interface{}) (domain.PaginatedReports, error) {
	return s.Repo.Paginate(ctx, user, page, pageSize, filters)
}

func (s *Service) companyProfile(ctx context.Context, cmd GenerateCommand) string {
	if cmd.AssessmentID == "" || s.Assessments == nil {
		return ""
	}
	a, err := s.Assessments.Get(ctx, cmd.UserID, domain.AssessmentID(cmd.AssessmentID))
	if err != nil || a == nil {
		return ""
	}
	return a.CompanyProfile
}

func (s *Service) recordFailure(cmd GenerateCommand, id, phase string, cause error) {
	if s.Failures == nil {
		return
	}
	_ = s.Failures.Save(context.Background(), &genfailures.GenerationFailure{
		UserID:     cmd.UserID,
		ReportID:   id,
		ReportType: cmd.Type,
		Phase:      phase,
		Message:    cause.Error(),
		CreatedAt:  s.Clock.Now(),
	})
}
