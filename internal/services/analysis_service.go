package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type AnalysisService interface {
	AnalyzeDocument(ctx context.Context, doc *models.Document, applicant models.Applicant, clientIP string) (*analyzer.Report, *models.Analysis, error)
}

type analysisService struct {
	analysisRepo repositories.AnalysisRepository
	extractor    ExtractorService
	recommender  *analyzer.Recommender
	indexer      ResumeIndexer
	hostName     string
	log          *zap.Logger
}

// NewAnalysisService wires the single-résumé pipeline. indexer may be nil, in
// which case analysed résumés are not added to the search index.
func NewAnalysisService(
	analysisRepo repositories.AnalysisRepository,
	extractor ExtractorService,
	recommender *analyzer.Recommender,
	indexer ResumeIndexer,
	log *zap.Logger,
) AnalysisService {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	return &analysisService{
		analysisRepo: analysisRepo,
		extractor:    extractor,
		recommender:  recommender,
		indexer:      indexer,
		hostName:     host,
		log:          log.With(zap.String("component", "analysis")),
	}
}

func (s *analysisService) AnalyzeDocument(ctx context.Context, doc *models.Document, applicant models.Applicant, clientIP string) (*analyzer.Report, *models.Analysis, error) {
	log := s.log.With(zap.String("document_id", doc.ID.String()))

	profile, err := s.extractor.Extract(doc.FilePath)
	if err != nil {
		log.Warn("resume extraction failed", zap.Error(err))
		return nil, nil, err
	}

	report := analyzer.Analyze(profile, s.recommender)

	analysis := &models.Analysis{
		ID:                 uuid.New(),
		DocumentID:         doc.ID,
		SubmittedName:      applicant.Name,
		SubmittedEmail:     applicant.Email,
		SubmittedPhone:     applicant.Phone,
		Name:               profile.Name,
		Email:              profile.Email,
		Phone:              profile.Phone,
		ResumeScore:        report.ScoreReport.TotalScore,
		PageCount:          profile.PageCount,
		PredictedField:     report.Recommendation.Field,
		UserLevel:          report.Level.Level,
		ActualSkills:       profile.Skills,
		RecommendedSkills:  report.Recommendation.RecommendedSkills,
		RecommendedCourses: report.Recommendation.RecommendedCourses,
		ClientIP:           clientIP,
		HostName:           s.hostName,
		CreatedAt:          time.Now(),
	}

	if err := s.analysisRepo.Create(analysis); err != nil {
		return nil, nil, fmt.Errorf("failed to record analysis: %w", err)
	}

	log.Info("resume analysed",
		zap.Int("score", report.ScoreReport.TotalScore),
		zap.String("field", string(report.Recommendation.Field)),
		zap.String("level", string(report.Level.Level)),
	)

	if s.indexer != nil {
		if n, err := s.indexer.IndexResume(ctx, doc.ID.String(), profile.RawText); err != nil {
			log.Warn("resume not indexed for search", zap.Int("chunks_stored", n), zap.Error(err))
		}
	}

	return &report, analysis, nil
}
