package models

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the tenancy boundary grouping jobs and applicants for one
// organization.
type Workspace struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
