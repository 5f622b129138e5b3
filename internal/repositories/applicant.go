package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"hirestack/recruitdesk/internal/models"
)

type ApplicantRepository interface {
	List(workspaceID uuid.UUID, filter ApplicantFilter, page Page) ([]models.Applicant, int64, error)
	ListAll(workspaceID uuid.UUID, filter ApplicantFilter) ([]models.Applicant, error)
	ListByStatus(workspaceID uuid.UUID, status models.ApplicantStatus, page Page) ([]models.Applicant, int64, error)
	FindByID(id int64) (*models.Applicant, error)
	Create(applicant *models.Applicant) error
	Update(id int64, updates map[string]interface{}) error
	UpdateStatus(id int64, status models.ApplicantStatus) error
	Delete(id int64) error
	CountByStatus(workspaceID uuid.UUID) (map[models.ApplicantStatus]int64, error)
	Recent(workspaceID uuid.UUID, limit int) ([]models.Applicant, error)
	FieldSuggestions(workspaceID uuid.UUID, field, search string) ([]string, error)
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

// suggestionFields whitelists the array columns the filter bar can complete.
var suggestionFields = map[string]bool{
	"skills":                   true,
	"previous_companies_names": true,
	"domains_worked":           true,
}

func (r *applicantRepository) base(workspaceID uuid.UUID) *gorm.DB {
	return r.db.Model(&models.Applicant{}).
		Select("applicants.*, jobs.title AS job_title").
		Joins("LEFT JOIN jobs ON jobs.job_id = applicants.job_id").
		Where("applicants.workspace_id = ?", workspaceID)
}

// List fetches one filtered page and the exact filtered total in the same
// round trip so the caller can compute total pages deterministically.
func (r *applicantRepository) List(workspaceID uuid.UUID, filter ApplicantFilter, page Page) ([]models.Applicant, int64, error) {
	page = page.Normalize()
	q := filter.Apply(r.base(workspaceID))

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applicants: %w", err)
	}

	var applicants []models.Applicant
	err := q.Order("applicants.applied_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&applicants).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applicants: %w", err)
	}

	return applicants, count, nil
}

// ListAll is the unpaginated variant backing the CSV export.
func (r *applicantRepository) ListAll(workspaceID uuid.UUID, filter ApplicantFilter) ([]models.Applicant, error) {
	var applicants []models.Applicant
	err := filter.Apply(r.base(workspaceID)).
		Order("applicants.applied_at DESC").
		Find(&applicants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return applicants, nil
}

func (r *applicantRepository) ListByStatus(workspaceID uuid.UUID, status models.ApplicantStatus, page Page) ([]models.Applicant, int64, error) {
	page = page.Normalize()
	q := r.base(workspaceID).Where("applicants.status = ?", status)

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s applicants: %w", status, err)
	}

	var applicants []models.Applicant
	err := q.Order("applicants.applied_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&applicants).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s applicants: %w", status, err)
	}

	return applicants, count, nil
}

func (r *applicantRepository) FindByID(id int64) (*models.Applicant, error) {
	var applicant models.Applicant
	err := r.db.Model(&models.Applicant{}).
		Select("applicants.*, jobs.title AS job_title").
		Joins("LEFT JOIN jobs ON jobs.job_id = applicants.job_id").
		Where("applicants.id = ?", id).
		First(&applicant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("applicant not found")
		}
		return nil, fmt.Errorf("failed to find applicant: %w", err)
	}
	return &applicant, nil
}

func (r *applicantRepository) Create(applicant *models.Applicant) error {
	if err := r.db.Create(applicant).Error; err != nil {
		return fmt.Errorf("failed to create applicant: %w", err)
	}
	return nil
}

func (r *applicantRepository) Update(id int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.Model(&models.Applicant{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update applicant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("applicant not found")
	}
	return nil
}

func (r *applicantRepository) UpdateStatus(id int64, status models.ApplicantStatus) error {
	result := r.db.Model(&models.Applicant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("applicant not found")
	}
	return nil
}

func (r *applicantRepository) Delete(id int64) error {
	result := r.db.Where("id = ?", id).Delete(&models.Applicant{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete applicant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("applicant not found")
	}
	return nil
}

func (r *applicantRepository) CountByStatus(workspaceID uuid.UUID) (map[models.ApplicantStatus]int64, error) {
	type row struct {
		Status models.ApplicantStatus
		Total  int64
	}
	var rows []row
	err := r.db.Model(&models.Applicant{}).
		Select("status, COUNT(*) AS total").
		Where("workspace_id = ?", workspaceID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}

	counts := make(map[models.ApplicantStatus]int64, len(models.PipelineStatuses))
	for _, s := range models.PipelineStatuses {
		counts[s] = 0
	}
	for _, rw := range rows {
		counts[rw.Status] = rw.Total
	}
	return counts, nil
}

func (r *applicantRepository) Recent(workspaceID uuid.UUID, limit int) ([]models.Applicant, error) {
	var applicants []models.Applicant
	err := r.base(workspaceID).
		Order("applicants.applied_at DESC").
		Limit(limit).
		Find(&applicants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent applicants: %w", err)
	}
	return applicants, nil
}

// FieldSuggestions scans a bounded window of rows and extracts distinct tag
// values matching the search. Linear but bounded; good enough for the filter
// bar's autocomplete.
func (r *applicantRepository) FieldSuggestions(workspaceID uuid.UUID, field, search string) ([]string, error) {
	if !suggestionFields[field] {
		return nil, fmt.Errorf("unsupported suggestion field %q", field)
	}

	var rows []pq.StringArray
	err := r.db.Model(&models.Applicant{}).
		Where("workspace_id = ?", workspaceID).
		Limit(500).
		Pluck(field, &rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s suggestions: %w", field, err)
	}

	seen := make(map[string]bool)
	needle := strings.ToLower(search)
	var out []string
	for _, tags := range rows {
		for _, tag := range tags {
			if seen[tag] || !strings.Contains(strings.ToLower(tag), needle) {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
			if len(out) == 10 {
				return out, nil
			}
		}
	}
	return out, nil
}
