package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	List() ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(feedback *models.Feedback) error {
	if err := r.db.Create(feedback).Error; err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepository) List() ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := r.db.Order("created_at DESC").Find(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
