package models

import (
	"time"

	"github.com/google/uuid"
)

const DocumentTypeResume = "resume"

// Document is an uploaded file kept in the upload directory. Match jobs and
// analyses refer to it by ID.
type Document struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FileType         string    `gorm:"type:text;index" json:"file_type"`
	FilePath         string    `gorm:"type:text" json:"-"`
	SizeBytes        int64     `gorm:"not null;default:0" json:"size_bytes"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}
