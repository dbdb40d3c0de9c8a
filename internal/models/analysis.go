package models

import (
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
)

// Applicant is what the user typed into the upload form, kept next to what
// the extractor found.
type Applicant struct {
	Name  string `json:"name" form:"name" validate:"omitempty,max=200"`
	Email string `json:"email" form:"email" validate:"omitempty,email"`
	Phone string `json:"phone" form:"phone" validate:"omitempty,max=40"`
}

// Analysis is one recorded résumé analysis. Rows are only ever inserted.
type Analysis struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DocumentID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"document_id"`
	SubmittedName      string            `gorm:"type:text" json:"submitted_name"`
	SubmittedEmail     string            `gorm:"type:text" json:"submitted_email"`
	SubmittedPhone     string            `gorm:"type:text" json:"submitted_phone"`
	Name               *string           `gorm:"type:text" json:"name"`
	Email              *string           `gorm:"type:text" json:"email"`
	Phone              *string           `gorm:"type:text" json:"phone"`
	ResumeScore        int               `gorm:"not null" json:"resume_score"`
	PageCount          *int              `json:"page_count"`
	PredictedField     analyzer.Field    `gorm:"type:text" json:"predicted_field"`
	UserLevel          analyzer.Level    `gorm:"type:text" json:"user_level"`
	ActualSkills       []string          `gorm:"serializer:json" json:"actual_skills"`
	RecommendedSkills  []string          `gorm:"serializer:json" json:"recommended_skills"`
	RecommendedCourses []analyzer.Course `gorm:"serializer:json" json:"recommended_courses"`
	ClientIP           string            `gorm:"type:text" json:"client_ip"`
	HostName           string            `gorm:"type:text" json:"host_name"`
	CreatedAt          time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
