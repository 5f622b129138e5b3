package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirestack/recruitdesk/internal/models"
)

type CommentRepository interface {
	ListByApplicant(applicantID int64) ([]models.Comment, error)
	ListAll(workspaceID uuid.UUID, page Page) ([]models.Comment, int64, error)
	Create(comment *models.Comment) error
	Delete(id uuid.UUID) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) withAuthor() *gorm.DB {
	return r.db.Model(&models.Comment{}).
		Select("comments.*, users.name AS author_name, users.email AS author_email").
		Joins("LEFT JOIN users ON users.id = comments.user_id")
}

// ListByApplicant returns the full thread, newest first.
func (r *commentRepository) ListByApplicant(applicantID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.withAuthor().
		Where("comments.applicant_id = ?", applicantID).
		Order("comments.created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) ListAll(workspaceID uuid.UUID, page Page) ([]models.Comment, int64, error) {
	page = page.Normalize()
	q := r.withAuthor().Where("comments.workspace_id = ?", workspaceID)

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	var comments []models.Comment
	err := q.Order("comments.created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, count, nil
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Comment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}
