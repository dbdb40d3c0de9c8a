package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
)

type MatchStatus string

const (
	StatusQueued     MatchStatus = "queued"
	StatusProcessing MatchStatus = "processing"
	StatusCompleted  MatchStatus = "completed"
	StatusFailed     MatchStatus = "failed"
)

// SkippedCandidate is a candidate that could not be ranked.
type SkippedCandidate struct {
	CandidateID string `json:"candidate_id"`
	Reason      string `json:"reason"`
}

// MatchJob ranks a set of uploaded résumés against one job description.
type MatchJob struct {
	ID             uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobDescription string                 `gorm:"type:text;not null" json:"job_description"`
	DocumentIDs    []uuid.UUID            `gorm:"serializer:json" json:"document_ids"`
	Status         MatchStatus            `gorm:"not null;default:'queued'" json:"status"`
	Results        analyzer.RankedResults `gorm:"serializer:json" json:"results,omitempty"`
	Skipped        []SkippedCandidate     `gorm:"serializer:json" json:"skipped,omitempty"`
	ErrorMessage   *string                `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt      time.Time              `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time              `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MatchJob) TableName() string {
	return "match_jobs"
}
