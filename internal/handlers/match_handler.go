package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type MatchHandler struct {
	uploads   *UploadHandler
	matchRepo repositories.MatchJobRepository
	worker    services.Worker
}

func NewMatchHandler(
	uploads *UploadHandler,
	matchRepo repositories.MatchJobRepository,
	worker services.Worker,
) *MatchHandler {
	return &MatchHandler{
		uploads:   uploads,
		matchRepo: matchRepo,
		worker:    worker,
	}
}

// HandleCreate handles POST /match
func (h *MatchHandler) HandleCreate(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	var jobDescription string
	if values := form.Value["job_description"]; len(values) > 0 {
		jobDescription = strings.TrimSpace(values[0])
	}
	if jobDescription == "" {
		return errorJSON(c, fiber.StatusBadRequest, "job_description is required")
	}

	accepted := []string{}
	ignored := []string{}
	rejected := []models.RejectedFile{}
	var docIDs []uuid.UUID

	for _, file := range form.File["resumes"] {
		if !analyzer.IsSupportedResume(file.Filename) {
			ignored = append(ignored, file.Filename)
			continue
		}

		// a file that cannot be stored does not sink the rest of the batch
		doc, err := h.uploads.store(file)
		if err != nil {
			_, reason := uploadFailure(file, err)
			rejected = append(rejected, models.RejectedFile{Filename: file.Filename, Reason: reason})
			continue
		}
		docIDs = append(docIDs, doc.ID)
		accepted = append(accepted, file.Filename)
	}

	if len(docIDs) == 0 {
		if len(rejected) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "None of the uploaded files could be stored.",
				"rejected": rejected,
			})
		}
		return errorJSON(c, fiber.StatusBadRequest, "No valid files uploaded. Please upload one or more 'resumes' as PDF files.")
	}

	job := &models.MatchJob{
		ID:             uuid.New(),
		JobDescription: jobDescription,
		DocumentIDs:    docIDs,
		Status:         models.StatusQueued,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.matchRepo.Create(job); err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to create match job")
	}

	h.worker.EnqueueJob(job.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.MatchResponse{
		ID:       job.ID.String(),
		Status:   string(job.Status),
		Accepted: accepted,
		Ignored:  ignored,
		Rejected: rejected,
	})
}

// HandleGet handles GET /match/:id
func (h *MatchHandler) HandleGet(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid match ID format")
	}

	job, err := h.matchRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, "Match job not found")
		}
		return errorJSON(c, fiber.StatusInternalServerError, "Failed to load match job")
	}

	resp := models.MatchResultResponse{
		ID:     job.ID.String(),
		Status: string(job.Status),
	}

	switch job.Status {
	case models.StatusCompleted:
		results := job.Results
		if results == nil {
			results = analyzer.RankedResults{}
		}
		skipped := job.Skipped
		if skipped == nil {
			skipped = []models.SkippedCandidate{}
		}
		resp.Results = &results
		resp.Skipped = &skipped
	case models.StatusFailed:
		resp.ErrorMessage = job.ErrorMessage
	}

	return c.JSON(resp)
}
