package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type FeedbackHandler struct {
	feedbackRepo repositories.FeedbackRepository
}

func NewFeedbackHandler(feedbackRepo repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{feedbackRepo: feedbackRepo}
}

// HandleFeedback handles POST /feedback
func (h *FeedbackHandler) HandleFeedback(c *fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	feedback := &models.Feedback{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Score:     req.Score,
		Comments:  req.Comments,
		CreatedAt: time.Now(),
	}

	if err := h.feedbackRepo.Create(feedback); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to save feedback")
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}
