package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hirestack/recruitdesk/internal/models"
)

type WorkspaceRepository interface {
	List() ([]models.Workspace, error)
	FindByID(id uuid.UUID) (*models.Workspace, error)
	Create(workspace *models.Workspace) error
}

type workspaceRepository struct {
	db *gorm.DB
}

func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) List() ([]models.Workspace, error) {
	var workspaces []models.Workspace
	if err := r.db.Order("created_at ASC").Find(&workspaces).Error; err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

func (r *workspaceRepository) FindByID(id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.Where("id = ?", id).First(&workspace).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("workspace not found")
		}
		return nil, fmt.Errorf("failed to find workspace: %w", err)
	}
	return &workspace, nil
}

func (r *workspaceRepository) Create(workspace *models.Workspace) error {
	if err := r.db.Create(workspace).Error; err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}
