package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

type StorageService interface {
	SaveFile(file *multipart.FileHeader, fileType string) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{uploadPath: uploadPath}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// SaveFile stores an uploaded PDF as <fileType>_<uuid>.pdf and returns that
// name and the full path. The upload is written to a temporary file first so
// a worker never sees a partially written résumé.
func (s *storageService) SaveFile(file *multipart.FileHeader, fileType string) (string, string, error) {
	if !analyzer.IsSupportedResume(file.Filename) {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(file.Filename))
	}

	name := storedName(fileType, file.Filename)
	dest := filepath.Join(s.uploadPath, name)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := writeAtomically(dest, src); err != nil {
		return "", "", err
	}

	return name, dest, nil
}

func storedName(fileType, original string) string {
	return fileType + "_" + uuid.NewString() + strings.ToLower(filepath.Ext(original))
}

func writeAtomically(dest string, src io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to save file: %w", err)
	}

	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}

// GetFilePath resolves a stored name inside the upload directory. Any
// directory part of filename is dropped.
func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filepath.Base(filename))
}

func (s *storageService) DeleteFile(filename string) error {
	if err := os.Remove(s.GetFilePath(filename)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
