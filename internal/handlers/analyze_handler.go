package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	uploads         *UploadHandler
	analysisService services.AnalysisService
}

func NewAnalyzeHandler(uploads *UploadHandler, analysisService services.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploads:         uploads,
		analysisService: analysisService,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "resume file is required")
	}

	var applicant models.Applicant
	if err := c.BodyParser(&applicant); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(&applicant); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, validationMessage(err))
	}

	doc, err := h.uploads.store(file)
	if err != nil {
		return uploadError(c, file, err)
	}

	report, analysis, err := h.analysisService.AnalyzeDocument(c.UserContext(), doc, applicant, c.IP())
	if err != nil {
		if errors.Is(err, services.ErrExtractionFailed) {
			return errorJSON(c, fiber.StatusUnprocessableEntity, "could not read text from the uploaded résumé")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to analyse résumé")
	}

	return c.JSON(models.AnalyzeResponse{
		DocumentID: doc.ID.String(),
		AnalysisID: analysis.ID.String(),
		Report:     *report,
	})
}
