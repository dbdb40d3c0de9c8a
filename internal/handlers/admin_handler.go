package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type AdminHandler struct {
	analysisRepo repositories.AnalysisRepository
	feedbackRepo repositories.FeedbackRepository
}

func NewAdminHandler(analysisRepo repositories.AnalysisRepository, feedbackRepo repositories.FeedbackRepository) *AdminHandler {
	return &AdminHandler{
		analysisRepo: analysisRepo,
		feedbackRepo: feedbackRepo,
	}
}

// HandleListAnalyses handles GET /admin/analyses?limit=&offset=
func (h *AdminHandler) HandleListAnalyses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultPageSize)
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	total, err := h.analysisRepo.Count()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to count analyses")
	}

	analyses, err := h.analysisRepo.List(limit, offset)
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to list analyses")
	}
	if analyses == nil {
		analyses = []models.Analysis{}
	}

	return c.JSON(models.AnalysesPage{
		Total:    total,
		Analyses: analyses,
	})
}

// HandleListFeedback handles GET /admin/feedback
func (h *AdminHandler) HandleListFeedback(c *fiber.Ctx) error {
	feedback, err := h.feedbackRepo.List()
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to list feedback")
	}
	if feedback == nil {
		feedback = []models.Feedback{}
	}

	return c.JSON(fiber.Map{
		"feedback": feedback,
	})
}
