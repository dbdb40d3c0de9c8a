package models

import "alfredoptarigan/resume-analyzer/internal/analyzer"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type AnalyzeResponse struct {
	DocumentID string `json:"document_id"`
	AnalysisID string `json:"analysis_id"`
	analyzer.Report
}

// RejectedFile is an upload that was dropped from a match request.
type RejectedFile struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

type MatchResponse struct {
	ID       string         `json:"id"`
	Status   string         `json:"status"`
	Accepted []string       `json:"accepted"`
	Ignored  []string       `json:"ignored"`
	Rejected []RejectedFile `json:"rejected"`
}

// MatchResultResponse carries results and skipped only once the job has
// completed, and then always as arrays.
type MatchResultResponse struct {
	ID           string                  `json:"id"`
	Status       string                  `json:"status"`
	Results      *analyzer.RankedResults `json:"results,omitempty"`
	Skipped      *[]SkippedCandidate     `json:"skipped,omitempty"`
	ErrorMessage *string                 `json:"error_message,omitempty"`
}

type SearchRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=10"`
	Limit          int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

type SearchHit struct {
	DocumentID string  `json:"document_id"`
	Score      float32 `json:"score"`
	Snippet    string  `json:"snippet"`
}

type FeedbackRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Score    int    `json:"score" validate:"required,min=1,max=5"`
	Comments string `json:"comments" validate:"max=2000"`
}

type AnalysesPage struct {
	Total    int64      `json:"total"`
	Analyses []Analysis `json:"analyses"`
}
