package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
	"hirestack/recruitdesk/internal/services"
)

type ApplicantHandler struct {
	applicants repositories.ApplicantRepository
	board      services.BoardService
}

func NewApplicantHandler(applicants repositories.ApplicantRepository, board services.BoardService) *ApplicantHandler {
	return &ApplicantHandler{applicants: applicants, board: board}
}

// HandleList is the flat candidate list: filtered, newest-applied-first, one
// shared page plus the exact total.
func (h *ApplicantHandler) HandleList(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	page := pageParams(c)
	applicants, count, err := h.applicants.List(wsID, applicantFilter(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch applicants",
		})
	}

	return c.JSON(models.ListResponse[models.Applicant]{
		Data:       applicants,
		Count:      count,
		Page:       page.Number,
		Limit:      page.Size,
		TotalPages: repositories.TotalPages(count, page.Size),
	})
}

func (h *ApplicantHandler) HandleGet(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
	}

	applicant, err := h.applicants.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "applicant not found",
		})
	}
	return c.JSON(applicant)
}

func (h *ApplicantHandler) HandleCreate(c *fiber.Ctx) error {
	var applicant models.Applicant
	if err := c.BodyParser(&applicant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if applicant.Status == "" {
		applicant.Status = models.StatusNew
	}
	if !applicant.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status",
		})
	}

	if err := h.applicants.Create(&applicant); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create applicant",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(applicant)
}

// HandleUpdate is the free-form field edit; status changes go through
// HandleStatusChange so the board state stays coherent.
func (h *ApplicantHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
	}

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil || len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	delete(updates, "id")
	delete(updates, "status")

	if err := h.applicants.Update(id, updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update applicant",
		})
	}

	applicant, err := h.applicants.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "applicant not found",
		})
	}
	return c.JSON(applicant)
}

// HandleStatusChange is the explicit status selection path (detail panel
// dropdown): optimistic in-place overwrite with revert on a failed write.
func (h *ApplicantHandler) HandleStatusChange(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
	}

	var req models.StatusChangeRequest
	if !parseBody(c, &req) {
		return nil
	}
	status := models.ApplicantStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid status",
		})
	}

	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	if err := h.board.SetStatus(wsID, id, status); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update status",
		})
	}
	return c.JSON(fiber.Map{"id": id, "status": status})
}

func (h *ApplicantHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
	}

	if err := h.applicants.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete applicant",
		})
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// HandleExport streams the current filtered result set as a CSV download.
func (h *ApplicantHandler) HandleExport(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	applicants, err := h.applicants.ListAll(wsID, applicantFilter(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch applicants",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="applicants.csv"`)
	return c.SendString(services.ExportCSV(applicants))
}

// HandleSuggestions backs the filter bar autocomplete for tag columns.
func (h *ApplicantHandler) HandleSuggestions(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	suggestions, err := h.applicants.FieldSuggestions(wsID, c.Query("field"), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to fetch suggestions",
		})
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}
