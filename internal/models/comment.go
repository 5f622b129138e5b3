package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is one entry in an applicant's thread. Append-only from the
// dashboard; delete exists as an admin escape hatch.
type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ApplicantID int64     `gorm:"not null;index" json:"applicant_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Joined fields.
	AuthorName  string `gorm:"->;-:migration;column:author_name" json:"author_name,omitempty"`
	AuthorEmail string `gorm:"->;-:migration;column:author_email" json:"author_email,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
