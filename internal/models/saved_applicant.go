package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedApplicant is the (user, applicant) bookmark join row. Existence is the
// only state; the unique index makes save idempotent at the database.
type SavedApplicant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_applicant" json:"user_id"`
	ApplicantID int64     `gorm:"not null;uniqueIndex:idx_saved_user_applicant" json:"applicant_id"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SavedApplicant) TableName() string {
	return "saved_applicants"
}
