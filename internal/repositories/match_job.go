package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type MatchJobRepository interface {
	Create(job *models.MatchJob) error
	FindByID(id uuid.UUID) (*models.MatchJob, error)
	ClaimJob(id uuid.UUID) (bool, error)
	UpdateResult(id uuid.UUID, results analyzer.RankedResults, skipped []models.SkippedCandidate) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.MatchJob, error)
}

type matchJobRepository struct {
	db *gorm.DB
}

func NewMatchJobRepository(db *gorm.DB) MatchJobRepository {
	return &matchJobRepository{db: db}
}

func (r *matchJobRepository) Create(job *models.MatchJob) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create match job: %w", err)
	}
	return nil
}

func (r *matchJobRepository) FindByID(id uuid.UUID) (*models.MatchJob, error) {
	var job models.MatchJob
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("match job %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find match job: %w", err)
	}
	return &job, nil
}

// ClaimJob moves a queued job to processing in a single conditional update.
// It reports false when the job is no longer queued.
func (r *matchJobRepository) ClaimJob(id uuid.UUID) (bool, error) {
	result := r.db.Model(&models.MatchJob{}).
		Where("id = ? AND status = ?", id, models.StatusQueued).
		Updates(map[string]interface{}{
			"status":     models.StatusProcessing,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim match job: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// UpdateResult stores the ranking and marks the job completed. The json
// serializer only runs through the model, so the job is saved field by field.
func (r *matchJobRepository) UpdateResult(id uuid.UUID, results analyzer.RankedResults, skipped []models.SkippedCandidate) error {
	job := models.MatchJob{
		Status:    models.StatusCompleted,
		Results:   results,
		Skipped:   skipped,
		UpdatedAt: time.Now(),
	}

	result := r.db.Model(&models.MatchJob{ID: id}).
		Select("status", "results", "skipped", "updated_at").
		Updates(&job)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("match job %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *matchJobRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	return r.update(id, map[string]interface{}{
		"status":        models.StatusFailed,
		"error_message": errorMsg,
		"updated_at":    time.Now(),
	})
}

func (r *matchJobRepository) FindPendingJobs(limit int) ([]models.MatchJob, error) {
	var jobs []models.MatchJob
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return jobs, nil
}

func (r *matchJobRepository) update(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.MatchJob{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update match job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match job %s: %w", id, ErrNotFound)
	}

	return nil
}
