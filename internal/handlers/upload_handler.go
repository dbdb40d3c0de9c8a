package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	files := form.File["resume"]
	if len(files) == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "No file uploaded. Please upload one or more 'resume' PDF files.")
	}

	responses := make([]models.UploadResponse, 0, len(files))
	for _, file := range files {
		doc, err := h.store(file)
		if err != nil {
			return uploadError(c, file, err)
		}

		responses = append(responses, models.UploadResponse{
			ID:           doc.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
			FileType:     doc.FileType,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Files uploaded successfully",
		"documents": responses,
	})
}

var errFileTooLarge = errors.New("file too large")

// store saves one uploaded résumé and records it as a document.
func (h *UploadHandler) store(file *multipart.FileHeader) (*models.Document, error) {
	if file.Size > h.maxFileSize {
		return nil, fmt.Errorf("%w: max size %d bytes", errFileTooLarge, h.maxFileSize)
	}

	filename, filePath, err := h.storageService.SaveFile(file, models.DocumentTypeResume)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FileType:         models.DocumentTypeResume,
		FilePath:         filePath,
		SizeBytes:        file.Size,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return nil, fmt.Errorf("failed to save document record: %w", err)
	}

	return doc, nil
}

func uploadError(c *fiber.Ctx, file *multipart.FileHeader, err error) error {
	status, msg := uploadFailure(file, err)
	return errorJSON(c, status, msg)
}

// uploadFailure maps a store error to a status code and a message naming the file.
func uploadFailure(file *multipart.FileHeader, err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnsupportedFile):
		return fiber.StatusBadRequest, fmt.Sprintf("%s: only PDF files are supported", file.Filename)
	case errors.Is(err, errFileTooLarge):
		return fiber.StatusBadRequest, fmt.Sprintf("%s: %v", file.Filename, err)
	default:
		return fiber.StatusInternalServerError, fmt.Sprintf("failed to save %s: %v", file.Filename, err)
	}
}
