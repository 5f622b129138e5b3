package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JobStatus string

const (
	JobStatusDraft JobStatus = "Draft"
	JobStatusLive  JobStatus = "Live"
	JobStatusEnded JobStatus = "Ended"
)

type Job struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	// JobID is the business key applicants reference, a slug derived from the
	// title. It survives title edits.
	JobID          string         `gorm:"type:text;uniqueIndex;not null" json:"job_id"`
	WorkspaceID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Title          string         `gorm:"type:text;not null" json:"title"`
	Department     string         `gorm:"type:text" json:"department"`
	Location       string         `gorm:"type:text" json:"location"`
	LocationType   string         `gorm:"type:text" json:"location_type"`
	EmploymentType string         `gorm:"type:text" json:"employment_type"`
	Status         JobStatus      `gorm:"type:text;not null;default:'Draft'" json:"status"`
	Description    string         `gorm:"type:text" json:"description"`
	Skills         pq.StringArray `gorm:"type:text[]" json:"skills"`
	SalaryRange    string         `gorm:"type:text" json:"salary_range"`
	SEOTitle       string         `gorm:"type:text" json:"seo_title"`
	SEODescription string         `gorm:"type:text" json:"seo_description"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusDraft, JobStatusLive, JobStatusEnded:
		return true
	}
	return false
}
