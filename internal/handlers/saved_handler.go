package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hirestack/recruitdesk/internal/middleware"
	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

type SavedHandler struct {
	saved repositories.SavedApplicantRepository
}

func NewSavedHandler(saved repositories.SavedApplicantRepository) *SavedHandler {
	return &SavedHandler{saved: saved}
}

func savedApplicantID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
		return 0, false
	}
	return id, true
}

// HandleSave bookmarks an applicant for the current user. Saving twice is
// success both times.
func (h *SavedHandler) HandleSave(c *fiber.Ctx) error {
	id, ok := savedApplicantID(c)
	if !ok {
		return nil
	}

	user := middleware.CurrentUser(c)
	if err := h.saved.Save(user.ID, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save applicant",
		})
	}
	return c.JSON(fiber.Map{"saved": true})
}

func (h *SavedHandler) HandleUnsave(c *fiber.Ctx) error {
	id, ok := savedApplicantID(c)
	if !ok {
		return nil
	}

	user := middleware.CurrentUser(c)
	if err := h.saved.Unsave(user.ID, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to unsave applicant",
		})
	}
	return c.JSON(fiber.Map{"saved": false})
}

// HandleIsSaved is the per-row probe each visible toggle issues on mount.
func (h *SavedHandler) HandleIsSaved(c *fiber.Ctx) error {
	id, ok := savedApplicantID(c)
	if !ok {
		return nil
	}

	user := middleware.CurrentUser(c)
	saved, err := h.saved.IsSaved(user.ID, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to check saved state",
		})
	}
	return c.JSON(fiber.Map{"saved": saved})
}

func (h *SavedHandler) HandleList(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	page := pageParams(c)

	rows, count, err := h.saved.ListByUser(user.ID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch saved applicants",
		})
	}

	return c.JSON(models.ListResponse[repositories.SavedRow]{
		Data:       rows,
		Count:      count,
		Page:       page.Number,
		Limit:      page.Size,
		TotalPages: repositories.TotalPages(count, page.Size),
	})
}
