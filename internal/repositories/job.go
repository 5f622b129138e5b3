package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirestack/recruitdesk/internal/models"
)

type JobRepository interface {
	ListByWorkspace(workspaceID uuid.UUID) ([]models.Job, error)
	FindByJobID(jobID string) (*models.Job, error)
	Create(job *models.Job) error
	Update(jobID string, updates map[string]interface{}) error
	ApplicantCounts(workspaceID uuid.UUID) (map[string]int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// FindByJobID looks a job up by its business key, not the primary key.
func (r *jobRepository) FindByJobID(jobID string) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("job_id = ?", jobID).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job not found")
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *jobRepository) Update(jobID string, updates map[string]interface{}) error {
	result := r.db.Model(&models.Job{}).
		Where("job_id = ?", jobID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job not found")
	}
	return nil
}

func (r *jobRepository) ApplicantCounts(workspaceID uuid.UUID) (map[string]int64, error) {
	type row struct {
		JobID string
		Total int64
	}
	var rows []row
	err := r.db.Model(&models.Applicant{}).
		Select("job_id, COUNT(*) AS total").
		Where("workspace_id = ?", workspaceID).
		Group("job_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count applicants per job: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.JobID] = rw.Total
	}
	return counts, nil
}
