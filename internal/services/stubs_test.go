package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type stubExtractor struct {
	texts map[string]string
	pages int
}

func (s *stubExtractor) Extract(filePath string) (*analyzer.ExtractedProfile, error) {
	text, ok := s.texts[filePath]
	if !ok {
		return nil, fmt.Errorf("%w: cannot open %s", ErrExtractionFailed, filePath)
	}
	return s.ProfileFromText(text, s.pages), nil
}

func (s *stubExtractor) ExtractFromBytes(data []byte) (*analyzer.ExtractedProfile, error) {
	return s.ProfileFromText(string(data), s.pages), nil
}

func (s *stubExtractor) ProfileFromText(text string, pageCount int) *analyzer.ExtractedProfile {
	return NewExtractorService(nil).ProfileFromText(text, pageCount)
}

// keywordEmbedder maps text onto a two-dimensional vector by counting two
// keywords, which makes similarity easy to reason about in tests.
type keywordEmbedder struct {
	mu    sync.Mutex
	fail  map[string]bool
	calls int
}

func (k *keywordEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	k.mu.Lock()
	k.calls++
	k.mu.Unlock()

	if k.fail[text] {
		return nil, errors.New("embedding service unavailable")
	}

	var golang, design float32
	for _, w := range splitWords(text) {
		switch w {
		case "go", "golang":
			golang++
		case "figma", "design":
			design++
		}
	}
	if golang == 0 && design == 0 {
		design = 0.01
	}
	return []float32{golang, design}, nil
}

func splitWords(text string) []string {
	var words []string
	var cur []rune
	for _, r := range text {
		if r == ' ' || r == '\n' || r == ',' || r == '.' {
			if len(cur) > 0 {
				words = append(words, string(cur))
				cur = cur[:0]
			}
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		words = append(words, string(cur))
	}
	return words
}

type memoryDocumentRepo struct {
	docs map[uuid.UUID]models.Document
}

func (m *memoryDocumentRepo) Create(doc *models.Document) error {
	if m.docs == nil {
		m.docs = map[uuid.UUID]models.Document{}
	}
	m.docs[doc.ID] = *doc
	return nil
}

func (m *memoryDocumentRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &doc, nil
}

func (m *memoryDocumentRepo) FindByIDs(ids []uuid.UUID) ([]models.Document, error) {
	var out []models.Document
	for _, id := range ids {
		if doc, ok := m.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

type memoryMatchRepo struct {
	mu        sync.Mutex
	jobs      map[uuid.UUID]*models.MatchJob
	resultErr error
}

func (m *memoryMatchRepo) Create(job *models.MatchJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.jobs == nil {
		m.jobs = map[uuid.UUID]*models.MatchJob{}
	}
	cp := *job
	m.jobs[job.ID] = &cp
	return nil
}

func (m *memoryMatchRepo) FindByID(id uuid.UUID) (*models.MatchJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memoryMatchRepo) ClaimJob(id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return false, repositories.ErrNotFound
	}
	if job.Status != models.StatusQueued {
		return false, nil
	}
	job.Status = models.StatusProcessing
	return true, nil
}

func (m *memoryMatchRepo) UpdateResult(id uuid.UUID, results analyzer.RankedResults, skipped []models.SkippedCandidate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.resultErr != nil {
		return m.resultErr
	}
	job, ok := m.jobs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	job.Status = models.StatusCompleted
	job.Results = results
	job.Skipped = skipped
	return nil
}

func (m *memoryMatchRepo) UpdateError(id uuid.UUID, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return repositories.ErrNotFound
	}
	job.Status = models.StatusFailed
	job.ErrorMessage = &msg
	return nil
}

func (m *memoryMatchRepo) FindPendingJobs(limit int) ([]models.MatchJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.MatchJob
	for _, job := range m.jobs {
		if job.Status == models.StatusQueued && len(out) < limit {
			out = append(out, *job)
		}
	}
	return out, nil
}

type memoryAnalysisRepo struct {
	created []models.Analysis
	err     error
}

func (m *memoryAnalysisRepo) Create(a *models.Analysis) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, *a)
	return nil
}

func (m *memoryAnalysisRepo) List(limit, offset int) ([]models.Analysis, error) {
	return m.created, nil
}

func (m *memoryAnalysisRepo) Count() (int64, error) {
	return int64(len(m.created)), nil
}

type recordingIndex struct {
	mu      sync.Mutex
	deleted []string
	points  []SearchResult
	results []SearchResult
	err     error
}

func (r *recordingIndex) InitCollection(context.Context) error { return nil }

func (r *recordingIndex) UpsertDocument(_ context.Context, docID, docType string, chunk int, text string, _ []float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.points = append(r.points, SearchResult{ID: docID, DocType: docType, Chunk: chunk, Text: text})
	return nil
}

func (r *recordingIndex) SearchSimilar(_ context.Context, _ []float32, _ string, limit int) ([]SearchResult, error) {
	if len(r.results) > limit {
		return r.results[:limit], nil
	}
	return r.results, nil
}

func (r *recordingIndex) DeleteDocument(_ context.Context, docID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, docID)
	return nil
}
