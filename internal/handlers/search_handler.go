package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type SearchHandler struct {
	matchService services.MatchService
}

func NewSearchHandler(matchService services.MatchService) *SearchHandler {
	return &SearchHandler{matchService: matchService}
}

// HandleSearch handles POST /search
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req models.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	hits, err := h.matchService.SearchResumes(c.UserContext(), req.JobDescription, req.Limit)
	if err != nil {
		if errors.Is(err, services.ErrSearchUnavailable) {
			return errorJSON(c, fiber.StatusServiceUnavailable, err.Error())
		}
		return errorJSON(c, fiber.StatusBadGateway, "Search failed")
	}

	if hits == nil {
		hits = []models.SearchHit{}
	}
	return c.JSON(fiber.Map{
		"results": hits,
	})
}
