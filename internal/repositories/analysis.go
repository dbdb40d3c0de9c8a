package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	List(limit, offset int) ([]models.Analysis, error)
	Count() (int64, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) List(limit, offset int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&analyses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

func (r *analysisRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Analysis{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return total, nil
}
