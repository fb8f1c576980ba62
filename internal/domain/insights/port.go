package insights

import "context"
import "time"

// ReportRepository port (interface untuk persistence)
type ReportRepository interface {
	Save(ctx context.Context, r *Report) error
	Get(ctx context.Context, user string, id ReportID) (*Report, error)
	Latest(ctx context.Context, user string, limit int) ([]*Report, error)
	UpdateStatus(ctx context.Context, user string, id ReportID, status ReportStatus) error
	UpdateResult(ctx context.Context, user string, id ReportID, status ReportStatus, fileURL string, pageCount int, summary *ReportSummary) error

	Paginate(ctx context.Context, user string, page, pageSize int, filters map[string]interface{}) (PaginatedReports, error)
	Cursor(ctx context.Context, user string, cursorTime time.Time, cursorID string, pageSize int) ([]*Report, error)
}

// AssessmentRepository port
type AssessmentRepository interface {
	Save(ctx context.Context, a *Assessment) error
	Get(ctx context.Context, user string, id AssessmentID) (*Assessment, error)
	Latest(ctx context.Context, user string, limit int) ([]*Assessment, error)
	UpdateStatus(ctx context.Context, user string, id AssessmentID, status AssessmentStatus) error
	Paginate(ctx context.Context, user string, page, pageSize int) ([]*Assessment, error)
}

// OrderRepository port
type OrderRepository interface {
	Save(ctx context.Context, o *Order) error
	Latest(ctx context.Context, user string, limit int) ([]*Order, error)
}

// ArtifactStore port (interface untuk penyimpanan report files)
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
	UploadAndCleanup(ctx context.Context, localPath, key string) (string, error)
}

// NarrativeClient port: produces the written body of a report from the
// assessment context. Implementations may call an LLM or synthesize locally.
type NarrativeClient interface {
	WriteNarrative(ctx context.Context, req NarrativeRequest) (string, error)
}

// NarrativeRequest carries everything the writer needs.
type NarrativeRequest struct {
	ReportType     string
	CompanyProfile string
	Summary        *ReportSummary
}

// Renderer port: turns a narrative into a local document file.
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) (RenderResult, error)
}

// RenderRequest untuk Renderer
type RenderRequest struct {
	ReportID  string
	Title     string
	Narrative string
	Summary   *ReportSummary
}

// RenderResult hasil dari Renderer
type RenderResult struct {
	LocalPath  string
	RawFormat  string
	PageCount  int
	DurationMS int64
}
