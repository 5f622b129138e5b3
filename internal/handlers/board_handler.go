package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
	"hirestack/recruitdesk/internal/services"
)

type BoardHandler struct {
	board services.BoardService
}

func NewBoardHandler(board services.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// HandleGetBoard loads all six status columns in parallel. Per-column pages
// come in as page_new, page_screening, ... ; q narrows the visible cards
// without touching the column totals.
func (h *BoardHandler) HandleGetBoard(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	pages := make(map[models.ApplicantStatus]int, len(models.PipelineStatuses))
	for _, status := range models.PipelineStatuses {
		pages[status] = c.QueryInt("page_"+string(status), 1)
	}

	view, err := h.board.Load(
		c.Context(),
		wsID,
		pages,
		c.QueryInt("limit", repositories.DefaultPageSize),
		c.Query("q"),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load board",
		})
	}
	return c.JSON(view)
}

// HandleMove persists a drag-and-drop between columns. A same-column drop is
// a no-op success; a failed write leaves both columns as they were.
func (h *BoardHandler) HandleMove(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	var req models.MoveRequest
	if !parseBody(c, &req) {
		return nil
	}

	from := models.ApplicantStatus(req.From)
	to := models.ApplicantStatus(req.To)
	if !from.Valid() || !to.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status",
		})
	}

	if err := h.board.Move(wsID, req.ApplicantID, from, to); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update status",
		})
	}
	return c.JSON(fiber.Map{
		"applicant_id": req.ApplicantID,
		"status":       to,
	})
}
