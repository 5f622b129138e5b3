package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

type WorkspaceHandler struct {
	workspaces repositories.WorkspaceRepository
}

func NewWorkspaceHandler(workspaces repositories.WorkspaceRepository) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces}
}

func (h *WorkspaceHandler) HandleList(c *fiber.Ctx) error {
	workspaces, err := h.workspaces.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch workspaces",
		})
	}
	return c.JSON(workspaces)
}

func (h *WorkspaceHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid workspace id",
		})
	}

	workspace, err := h.workspaces.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "workspace not found",
		})
	}
	return c.JSON(workspace)
}

func (h *WorkspaceHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateWorkspaceRequest
	if !parseBody(c, &req) {
		return nil
	}

	workspace := &models.Workspace{Name: req.Name}
	if err := h.workspaces.Create(workspace); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create workspace",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(workspace)
}
