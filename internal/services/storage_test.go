package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("resume", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req.MultipartForm.File["resume"][0]
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	name, path, err := storage.SaveFile(fileHeader(t, "CV.PDF", []byte("%PDF-1.4 body")), "resume")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(name, "resume_") || !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("unexpected stored name %q", name)
	}
	if path != filepath.Join(dir, name) {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "%PDF-1.4 body" {
		t.Fatalf("file content not stored: %q, %v", data, err)
	}

	if err := storage.DeleteFile(name); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected the file to be removed")
	}
}

func TestSaveFileRejectsNonPDF(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	for _, name := range []string{"cv.docx", "notes.txt", "pdf"} {
		if _, _, err := storage.SaveFile(fileHeader(t, name, []byte("x")), "resume"); !errors.Is(err, ErrUnsupportedFile) {
			t.Fatalf("%s: expected ErrUnsupportedFile, got %v", name, err)
		}
	}
}

func TestGetFilePathStaysInUploadDir(t *testing.T) {
	storage := NewStorageService("/srv/uploads")

	if got := storage.GetFilePath("../../etc/passwd"); got != "/srv/uploads/passwd" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestEnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if err := NewStorageService(dir).EnsureUploadDir(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist")
	}
}

func TestSaveFileLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	for i := 0; i < 3; i++ {
		if _, _, err := storage.SaveFile(fileHeader(t, "cv.pdf", []byte("%PDF")), "resume"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 stored files, got %d", len(entries))
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".upload-") {
			t.Fatalf("temporary file left behind: %s", e.Name())
		}
	}
}
