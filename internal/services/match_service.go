package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

var ErrSearchUnavailable = errors.New("resume search is not configured")

type MatchService interface {
	RunMatch(ctx context.Context, jobID uuid.UUID) error
	SearchResumes(ctx context.Context, jobDescription string, limit int) ([]models.SearchHit, error)
}

type matchService struct {
	matchRepo   repositories.MatchJobRepository
	docRepo     repositories.DocumentRepository
	extractor   ExtractorService
	ranker      *analyzer.Ranker
	embedder    analyzer.Embedder
	index       QdrantService
	concurrency int
	log         *zap.Logger
}

// NewMatchService wires job-description matching. index may be nil, which
// disables SearchResumes.
func NewMatchService(
	matchRepo repositories.MatchJobRepository,
	docRepo repositories.DocumentRepository,
	extractor ExtractorService,
	embedder analyzer.Embedder,
	index QdrantService,
	concurrency int,
	log *zap.Logger,
) MatchService {
	return &matchService{
		matchRepo:   matchRepo,
		docRepo:     docRepo,
		extractor:   extractor,
		ranker:      analyzer.NewRanker(embedder, concurrency),
		embedder:    embedder,
		index:       index,
		concurrency: concurrency,
		log:         log.With(zap.String("component", "match")),
	}
}

func (m *matchService) RunMatch(ctx context.Context, jobID uuid.UUID) error {
	log := m.log.With(zap.String("job_id", jobID.String()))

	job, err := m.matchRepo.FindByID(jobID)
	if err != nil {
		return fmt.Errorf("failed to get match job: %w", err)
	}

	// the same id can arrive from the queue and from the poller
	claimed, err := m.matchRepo.ClaimJob(jobID)
	if err != nil {
		return fmt.Errorf("failed to claim match job: %w", err)
	}
	if !claimed {
		log.Debug("match job already handled", zap.String("status", string(job.Status)))
		return nil
	}

	docs, err := m.docRepo.FindByIDs(job.DocumentIDs)
	if err != nil {
		m.fail(jobID, fmt.Sprintf("failed to load documents: %v", err))
		return fmt.Errorf("failed to load documents: %w", err)
	}

	files := make([]CandidateFile, 0, len(docs))
	for _, doc := range docs {
		files = append(files, CandidateFile{ID: doc.OriginalFileName, Path: doc.FilePath})
	}
	skipped := missingDocuments(job.DocumentIDs, docs)

	candidates, extractSkipped := ExtractCandidates(ctx, m.extractor, files, m.concurrency)
	skipped = append(skipped, extractSkipped...)

	log.Info("ranking candidates", zap.Int("candidates", len(candidates)), zap.Int("skipped", len(skipped)))

	outcome, err := m.ranker.Rank(ctx, job.JobDescription, candidates)
	if err != nil {
		m.fail(jobID, err.Error())
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	for _, f := range outcome.Failures {
		log.Warn("candidate excluded from ranking", zap.String("candidate", f.CandidateID), zap.Error(f.Err))
		skipped = append(skipped, models.SkippedCandidate{CandidateID: f.CandidateID, Reason: f.Err.Error()})
	}

	if err := m.matchRepo.UpdateResult(jobID, outcome.Results, skipped); err != nil {
		m.fail(jobID, fmt.Sprintf("failed to save results: %v", err))
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Info("match completed", zap.Int("ranked", len(outcome.Results)))
	return nil
}

func (m *matchService) fail(jobID uuid.UUID, msg string) {
	if err := m.matchRepo.UpdateError(jobID, msg); err != nil {
		m.log.Error("failed to record match error", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}

func missingDocuments(ids []uuid.UUID, docs []models.Document) []models.SkippedCandidate {
	found := make(map[uuid.UUID]struct{}, len(docs))
	for _, d := range docs {
		found[d.ID] = struct{}{}
	}

	var missing []models.SkippedCandidate
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, models.SkippedCandidate{CandidateID: id.String(), Reason: "document not found"})
		}
	}
	return missing
}

// SearchResumes finds indexed résumés closest to the job description. Hits
// are grouped per document, keeping each document's best chunk.
func (m *matchService) SearchResumes(ctx context.Context, jobDescription string, limit int) ([]models.SearchHit, error) {
	if m.index == nil {
		return nil, ErrSearchUnavailable
	}
	if limit <= 0 {
		limit = 10
	}

	embedding, err := m.embedder.Embed(ctx, jobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	// several chunks can belong to one résumé, so over-fetch before grouping
	results, err := m.index.SearchSimilar(ctx, embedding, DocTypeResume, limit*3)
	if err != nil {
		return nil, err
	}

	return groupHits(results, limit), nil
}

func groupHits(results []SearchResult, limit int) []models.SearchHit {
	best := make(map[string]int)
	var hits []models.SearchHit

	for _, r := range results {
		if r.ID == "" {
			continue
		}
		if i, ok := best[r.ID]; ok {
			if r.Score > hits[i].Score {
				hits[i].Score = r.Score
				hits[i].Snippet = snippet(r.Text)
			}
			continue
		}
		best[r.ID] = len(hits)
		hits = append(hits, models.SearchHit{DocumentID: r.ID, Score: r.Score, Snippet: snippet(r.Text)})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= 240 {
		return text
	}
	return string(runes[:240]) + "..."
}

// CandidateFile is a résumé on disk taking part in a match.
type CandidateFile struct {
	ID   string
	Path string
}

// ExtractCandidates extracts the text of every file concurrently. Files that
// are not PDFs are dropped silently, files that cannot be read are returned
// as skipped. Candidates keep the order of files.
func ExtractCandidates(ctx context.Context, extractor ExtractorService, files []CandidateFile, concurrency int) ([]analyzer.Candidate, []models.SkippedCandidate) {
	if concurrency < 1 {
		concurrency = 1
	}

	type slot struct {
		text    string
		err     error
		ignored bool
	}
	slots := make([]slot, len(files))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, f := range files {
		if !analyzer.IsSupportedResume(f.Path) {
			slots[i].ignored = true
			continue
		}
		if err := ctx.Err(); err != nil {
			slots[i].err = err
			continue
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, f CandidateFile) {
			defer wg.Done()
			defer func() { <-sem }()

			profile, err := extractor.Extract(f.Path)
			if err != nil {
				slots[i].err = err
				return
			}
			slots[i].text = profile.RawText
		}(i, f)
	}
	wg.Wait()

	candidates := make([]analyzer.Candidate, 0, len(files))
	var skipped []models.SkippedCandidate
	for i, s := range slots {
		if s.ignored {
			continue
		}
		if s.err != nil {
			skipped = append(skipped, models.SkippedCandidate{CandidateID: files[i].ID, Reason: s.err.Error()})
			continue
		}
		candidates = append(candidates, analyzer.Candidate{ID: files[i].ID, Text: s.text})
	}

	return candidates, skipped
}
