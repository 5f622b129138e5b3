package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ApplicantStatus string

const (
	StatusNew       ApplicantStatus = "new"
	StatusScreening ApplicantStatus = "screening"
	StatusInterview ApplicantStatus = "interview"
	StatusOffer     ApplicantStatus = "offer"
	StatusHired     ApplicantStatus = "hired"
	StatusRejected  ApplicantStatus = "rejected"
)

// PipelineStatuses is the fixed ordered set of applicant lifecycle states.
// Both the flat list and the kanban board iterate it in this order.
var PipelineStatuses = []ApplicantStatus{
	StatusNew,
	StatusScreening,
	StatusInterview,
	StatusOffer,
	StatusHired,
	StatusRejected,
}

func (s ApplicantStatus) Valid() bool {
	for _, p := range PipelineStatuses {
		if s == p {
			return true
		}
	}
	return false
}

// Applicant is one candidate application. It belongs to exactly one job via
// the job business key and one workspace. Status is the only field with
// transition semantics; everything else is freely editable.
type Applicant struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	// JobID references jobs.job_id (the business key), not the job's uuid.
	JobID string `gorm:"type:text;index" json:"job_id"`

	Name         string `gorm:"type:text;not null" json:"name"`
	Email        string `gorm:"type:text" json:"email"`
	MobileNumber string `gorm:"type:text" json:"mobile_number"`
	Linkedin     string `gorm:"type:text" json:"linkedin"`
	PortfolioURL string `gorm:"type:text;column:portfolio_link" json:"portfolio_link"`
	ResumeLink   string `gorm:"type:text" json:"resume_link"`

	CurrentCTC   string `gorm:"type:text" json:"current_ctc"`
	ExpectedCTC  string `gorm:"type:text" json:"expected_ctc"`
	NoticePeriod string `gorm:"type:text" json:"notice_period"`

	CurrentJobTitle      string         `gorm:"type:text" json:"current_job_title"`
	Gender               string         `gorm:"type:text" json:"gender"`
	HighestQualification string         `gorm:"type:text" json:"highest_qualification"`
	ATSScore             *float64       `gorm:"type:numeric" json:"ats_score,omitempty"`
	TotalExperienceYears *float64       `gorm:"type:numeric" json:"total_experience_years,omitempty"`
	Skills               pq.StringArray `gorm:"type:text[]" json:"skills"`
	DomainsWorked        pq.StringArray `gorm:"type:text[]" json:"domains_worked"`
	PreviousCompanies    pq.StringArray `gorm:"type:text[];column:previous_companies_names" json:"previous_companies_names"`

	Status     ApplicantStatus `gorm:"type:text;not null;default:'new';index" json:"status"`
	AssignedTo *uuid.UUID      `gorm:"type:uuid" json:"assigned_to,omitempty"`

	AppliedAt time.Time `gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP;index" json:"applied_at"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// JobTitle is filled by the join against jobs, not a column.
	JobTitle string `gorm:"->;-:migration;column:job_title" json:"job_title,omitempty"`
}

func (Applicant) TableName() string {
	return "applicants"
}
