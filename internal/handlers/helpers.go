package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirestack/recruitdesk/internal/repositories"
)

var validate = validator.New()

// parseBody binds and validates a JSON request body, replying 400 itself on
// failure. Callers stop when ok is false.
func parseBody(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
		return false
	}
	if err := validate.Struct(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return false
	}
	return true
}

func workspaceID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("workspace_id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "workspace_id query parameter required",
		})
		return uuid.Nil, false
	}
	return id, true
}

func pageParams(c *fiber.Ctx) repositories.Page {
	return repositories.Page{
		Number: c.QueryInt("page", 1),
		Size:   c.QueryInt("limit", repositories.DefaultPageSize),
	}.Normalize()
}

// applicantFilter assembles the filter bar selections from query parameters.
// Multi-value filters arrive comma separated; dates as YYYY-MM-DD or RFC3339.
func applicantFilter(c *fiber.Ctx) repositories.ApplicantFilter {
	f := repositories.ApplicantFilter{
		Search:     c.Query("search"),
		JobID:      c.Query("job_id"),
		Status:     c.Query("status"),
		Skills:     splitList(c.Query("skills")),
		Companies:  splitList(c.Query("company")),
		Domains:    splitList(c.Query("domain")),
		AssignedTo: c.Query("assigned_to"),
	}
	if exp := c.Query("experience"); exp != "" {
		if v, err := strconv.ParseFloat(exp, 64); err == nil {
			f.MinExperience = &v
		}
	}
	if from := parseDate(c.Query("date_from")); from != nil {
		f.DateFrom = from
	}
	if to := parseDate(c.Query("date_to")); to != nil {
		f.DateTo = to
	}
	return f
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
