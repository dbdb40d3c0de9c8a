package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type memoryDocs struct {
	mu   sync.Mutex
	docs []models.Document
}

func (m *memoryDocs) Create(doc *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *doc)
	return nil
}

func (m *memoryDocs) FindByID(id uuid.UUID) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *memoryDocs) FindByIDs(ids []uuid.UUID) ([]models.Document, error) {
	var out []models.Document
	for _, id := range ids {
		if d, err := m.FindByID(id); err == nil {
			out = append(out, *d)
		}
	}
	return out, nil
}

type memoryJobs struct {
	jobs map[uuid.UUID]models.MatchJob
}

func (m *memoryJobs) Create(job *models.MatchJob) error {
	if m.jobs == nil {
		m.jobs = map[uuid.UUID]models.MatchJob{}
	}
	m.jobs[job.ID] = *job
	return nil
}

func (m *memoryJobs) FindByID(id uuid.UUID) (*models.MatchJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &job, nil
}

func (m *memoryJobs) ClaimJob(uuid.UUID) (bool, error) { return true, nil }
func (m *memoryJobs) UpdateResult(uuid.UUID, analyzer.RankedResults, []models.SkippedCandidate) error {
	return nil
}
func (m *memoryJobs) UpdateError(uuid.UUID, string) error { return nil }
func (m *memoryJobs) FindPendingJobs(int) ([]models.MatchJob, error) { return nil, nil }

type recordingWorker struct {
	enqueued []uuid.UUID
}

func (w *recordingWorker) Start(context.Context) {}
func (w *recordingWorker) Stop() {}
func (w *recordingWorker) EnqueueJob(jobID uuid.UUID) { w.enqueued = append(w.enqueued, jobID) }

type stubAnalysis struct {
	err       error
	applicant models.Applicant
}

func (s *stubAnalysis) AnalyzeDocument(_ context.Context, doc *models.Document, applicant models.Applicant, _ string) (*analyzer.Report, *models.Analysis, error) {
	s.applicant = applicant
	if s.err != nil {
		return nil, nil, s.err
	}
	report := analyzer.Analyze(&analyzer.ExtractedProfile{Skills: []string{"Figma"}}, analyzer.NewRecommender(nil))
	return &report, &models.Analysis{ID: uuid.New(), DocumentID: doc.ID}, nil
}

type stubMatch struct {
	hits []models.SearchHit
	err  error
}

func (s *stubMatch) RunMatch(context.Context, uuid.UUID) error { return nil }

func (s *stubMatch) SearchResumes(context.Context, string, int) ([]models.SearchHit, error) {
	return s.hits, s.err
}

type memoryFeedback struct {
	items []models.Feedback
}

func (m *memoryFeedback) Create(f *models.Feedback) error {
	m.items = append(m.items, *f)
	return nil
}

func (m *memoryFeedback) List() ([]models.Feedback, error) { return m.items, nil }

type memoryAnalyses struct {
	items []models.Analysis
	err   error
}

func (m *memoryAnalyses) Create(a *models.Analysis) error {
	m.items = append(m.items, *a)
	return nil
}

func (m *memoryAnalyses) List(limit, offset int) ([]models.Analysis, error) {
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.items) {
		return nil, nil
	}
	end := min(offset+limit, len(m.items))
	return m.items[offset:end], nil
}

func (m *memoryAnalyses) Count() (int64, error) { return int64(len(m.items)), m.err }

type testEnv struct {
	app      *fiber.App
	docs     *memoryDocs
	jobs     *memoryJobs
	worker   *recordingWorker
	analysis *stubAnalysis
	match    *stubMatch
	feedback *memoryFeedback
	analyses *memoryAnalyses
}

var testAdmin = config.AdminConfig{User: "admin", Password: "secret"}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		docs:     &memoryDocs{},
		jobs:     &memoryJobs{},
		worker:   &recordingWorker{},
		analysis: &stubAnalysis{},
		match:    &stubMatch{},
		feedback: &memoryFeedback{},
		analyses: &memoryAnalyses{},
	}

	uploads := NewUploadHandler(env.docs, services.NewStorageService(t.TempDir()), 1<<20)
	env.app = fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(env.app, Handlers{
		Upload:   uploads,
		Analyze:  NewAnalyzeHandler(uploads, env.analysis),
		Match:    NewMatchHandler(uploads, env.jobs, env.worker),
		Search:   NewSearchHandler(env.match),
		Feedback: NewFeedbackHandler(env.feedback),
		Admin:    NewAdminHandler(env.analyses, env.feedback),
	}, testAdmin)

	return env
}

type formFile struct {
	field, name string
	content     []byte
}

func multipartRequest(t *testing.T, path string, values map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range values {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write(f.content)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func (env *testEnv) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := env.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

var errBoom = errors.New("boom")
