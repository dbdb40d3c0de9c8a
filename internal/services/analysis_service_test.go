package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/models"
)

func TestAnalyzeDocument(t *testing.T) {
	doc := &models.Document{ID: uuid.New(), FilePath: "/uploads/priya.pdf"}
	extractor := &stubExtractor{pages: 2, texts: map[string]string{doc.FilePath: sampleResume}}
	repo := &memoryAnalysisRepo{}
	index := &recordingIndex{}
	indexer := NewResumeIndexer(&keywordEmbedder{}, index, NewTextChunker(), zap.NewNop())

	svc := NewAnalysisService(repo, extractor, analyzer.NewRecommender(nil), indexer, zap.NewNop())
	applicant := models.Applicant{Name: "Priya", Email: "priya@example.com", Phone: "9876543210"}

	report, analysis, err := svc.AnalyzeDocument(context.Background(), doc, applicant, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Recommendation.Field != analyzer.FieldDataScience {
		t.Fatalf("expected data science, got %s", report.Recommendation.Field)
	}
	if report.Level.Level != analyzer.LevelFresher {
		t.Fatalf("expected fresher, got %s", report.Level.Level)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected one stored analysis, got %d", len(repo.created))
	}
	stored := repo.created[0]
	if stored.ID != analysis.ID || stored.DocumentID != doc.ID {
		t.Fatalf("stored analysis does not match the returned one")
	}
	if stored.SubmittedEmail != applicant.Email || stored.ClientIP != "10.0.0.1" {
		t.Fatalf("applicant details not recorded: %+v", stored)
	}
	if stored.ResumeScore != report.ScoreReport.TotalScore {
		t.Fatalf("score mismatch: %d vs %d", stored.ResumeScore, report.ScoreReport.TotalScore)
	}
	if stored.PageCount == nil || *stored.PageCount != 2 {
		t.Fatalf("unexpected page count %v", stored.PageCount)
	}

	if len(index.deleted) != 1 || index.deleted[0] != doc.ID.String() {
		t.Fatalf("expected previous chunks to be cleared, got %v", index.deleted)
	}
	if len(index.points) == 0 || index.points[0].DocType != DocTypeResume {
		t.Fatalf("expected the résumé to be indexed, got %+v", index.points)
	}
}

func TestAnalyzeDocumentExtractionFailure(t *testing.T) {
	repo := &memoryAnalysisRepo{}
	svc := NewAnalysisService(repo, &stubExtractor{}, analyzer.NewRecommender(nil), nil, zap.NewNop())

	_, _, err := svc.AnalyzeDocument(context.Background(), &models.Document{ID: uuid.New(), FilePath: "/missing.pdf"}, models.Applicant{}, "")
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing should be stored on failure")
	}
}

func TestAnalyzeDocumentRepositoryFailure(t *testing.T) {
	doc := &models.Document{ID: uuid.New(), FilePath: "/a.pdf"}
	extractor := &stubExtractor{pages: 1, texts: map[string]string{doc.FilePath: "John Doe"}}
	repo := &memoryAnalysisRepo{err: errors.New("db down")}
	svc := NewAnalysisService(repo, extractor, analyzer.NewRecommender(nil), nil, zap.NewNop())

	if _, _, err := svc.AnalyzeDocument(context.Background(), doc, models.Applicant{}, ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestAnalyzeDocumentIndexFailureIsNotFatal(t *testing.T) {
	doc := &models.Document{ID: uuid.New(), FilePath: "/a.pdf"}
	extractor := &stubExtractor{pages: 1, texts: map[string]string{doc.FilePath: "John Doe\nGo developer"}}
	index := &recordingIndex{err: errors.New("qdrant unavailable")}
	indexer := NewResumeIndexer(&keywordEmbedder{}, index, NewTextChunker(), zap.NewNop())
	svc := NewAnalysisService(&memoryAnalysisRepo{}, extractor, analyzer.NewRecommender(nil), indexer, zap.NewNop())

	if _, _, err := svc.AnalyzeDocument(context.Background(), doc, models.Applicant{}, ""); err != nil {
		t.Fatalf("index failures must not fail the analysis: %v", err)
	}
}
