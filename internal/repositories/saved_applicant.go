package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirestack/recruitdesk/internal/models"
)

// SavedRow is a saved applicant joined with its bookmark timestamp.
type SavedRow struct {
	models.Applicant
	SavedAt string `gorm:"column:saved_at" json:"saved_at"`
}

type SavedApplicantRepository interface {
	Save(userID uuid.UUID, applicantID int64) error
	Unsave(userID uuid.UUID, applicantID int64) error
	IsSaved(userID uuid.UUID, applicantID int64) (bool, error)
	ListByUser(userID uuid.UUID, page Page) ([]SavedRow, int64, error)
}

type savedApplicantRepository struct {
	db *gorm.DB
}

func NewSavedApplicantRepository(db *gorm.DB) SavedApplicantRepository {
	return &savedApplicantRepository{db: db}
}

// Save is idempotent: the unique (user, applicant) index reports a duplicate
// and we treat that as already-saved success.
func (r *savedApplicantRepository) Save(userID uuid.UUID, applicantID int64) error {
	saved := models.SavedApplicant{
		UserID:      userID,
		ApplicantID: applicantID,
	}
	if err := r.db.Create(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to save applicant: %w", err)
	}
	return nil
}

// Unsave deletes the bookmark if present; deleting an absent row is success.
func (r *savedApplicantRepository) Unsave(userID uuid.UUID, applicantID int64) error {
	err := r.db.Where("user_id = ? AND applicant_id = ?", userID, applicantID).
		Delete(&models.SavedApplicant{}).Error
	if err != nil {
		return fmt.Errorf("failed to unsave applicant: %w", err)
	}
	return nil
}

func (r *savedApplicantRepository) IsSaved(userID uuid.UUID, applicantID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedApplicant{}).
		Where("user_id = ? AND applicant_id = ?", userID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check saved state: %w", err)
	}
	return count > 0, nil
}

func (r *savedApplicantRepository) ListByUser(userID uuid.UUID, page Page) ([]SavedRow, int64, error) {
	page = page.Normalize()
	q := r.db.Model(&models.SavedApplicant{}).
		Select("applicants.*, jobs.title AS job_title, saved_applicants.created_at AS saved_at").
		Joins("JOIN applicants ON applicants.id = saved_applicants.applicant_id").
		Joins("LEFT JOIN jobs ON jobs.job_id = applicants.job_id").
		Where("saved_applicants.user_id = ?", userID)

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count saved applicants: %w", err)
	}

	var rows []SavedRow
	err := q.Order("saved_applicants.created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list saved applicants: %w", err)
	}

	return rows, count, nil
}
