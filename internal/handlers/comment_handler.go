package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirestack/recruitdesk/internal/middleware"
	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

type CommentHandler struct {
	comments   repositories.CommentRepository
	applicants repositories.ApplicantRepository
}

func NewCommentHandler(comments repositories.CommentRepository, applicants repositories.ApplicantRepository) *CommentHandler {
	return &CommentHandler{comments: comments, applicants: applicants}
}

// HandleListByApplicant returns the thread newest-first. The detail panel
// fetches this on open and refetches after every post; comments are never
// appended locally.
func (h *CommentHandler) HandleListByApplicant(c *fiber.Ctx) error {
	applicantID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
	}

	comments, err := h.comments.ListByApplicant(applicantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch comments",
		})
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return c.JSON(comments)
}

func (h *CommentHandler) HandleCreate(c *fiber.Ctx) error {
	applicantID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid applicant id",
		})
	}

	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "comment cannot be empty",
		})
	}

	applicant, err := h.applicants.FindByID(applicantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "applicant not found",
		})
	}

	user := middleware.CurrentUser(c)
	comment := &models.Comment{
		ApplicantID: applicantID,
		UserID:      user.ID,
		WorkspaceID: applicant.WorkspaceID,
		Content:     content,
	}
	if err := h.comments.Create(comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to add comment",
		})
	}
	comment.AuthorName = user.Name
	comment.AuthorEmail = user.Email

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleListAll feeds the workspace-wide comments page.
func (h *CommentHandler) HandleListAll(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	page := pageParams(c)
	comments, count, err := h.comments.ListAll(wsID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch comments",
		})
	}

	return c.JSON(models.ListResponse[models.Comment]{
		Data:       comments,
		Count:      count,
		Page:       page.Number,
		Limit:      page.Size,
		TotalPages: repositories.TotalPages(count, page.Size),
	})
}

// HandleDelete is the administrative escape hatch; threads are otherwise
// append-only.
func (h *CommentHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid comment id",
		})
	}

	if err := h.comments.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to delete comment",
		})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
