package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
)

type DashboardHandler struct {
	applicants repositories.ApplicantRepository
	jobs       repositories.JobRepository
}

func NewDashboardHandler(applicants repositories.ApplicantRepository, jobs repositories.JobRepository) *DashboardHandler {
	return &DashboardHandler{applicants: applicants, jobs: jobs}
}

// HandleStats feeds the overview page: pipeline totals, live postings and
// the latest arrivals.
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	counts, err := h.applicants.CountByStatus(wsID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch stats",
		})
	}

	var total int64
	byStatus := make(map[string]int64, len(counts))
	for status, n := range counts {
		byStatus[string(status)] = n
		total += n
	}

	jobs, err := h.jobs.ListByWorkspace(wsID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch stats",
		})
	}
	var liveJobs int
	for _, job := range jobs {
		if job.Status == models.JobStatusLive {
			liveJobs++
		}
	}

	recent, err := h.applicants.Recent(wsID, 5)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch stats",
		})
	}

	return c.JSON(fiber.Map{
		"total_applicants": total,
		"by_status":        byStatus,
		"total_jobs":       len(jobs),
		"live_jobs":        liveJobs,
		"recent":           recent,
	})
}
