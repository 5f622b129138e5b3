package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
	"hirestack/recruitdesk/internal/services"
)

type JobHandler struct {
	jobs repositories.JobRepository
}

func NewJobHandler(jobs repositories.JobRepository) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobWithCount struct {
	models.Job
	ApplicantsCount int64 `json:"applicants_count"`
}

func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	jobs, err := h.jobs.ListByWorkspace(wsID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch jobs",
		})
	}
	counts, err := h.jobs.ApplicantCounts(wsID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch jobs",
		})
	}

	out := make([]jobWithCount, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jobWithCount{Job: job, ApplicantsCount: counts[job.JobID]})
	}
	return c.JSON(out)
}

func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	job, err := h.jobs.FindByJobID(c.Params("jobId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}
	return c.JSON(job)
}

func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	wsID, ok := workspaceID(c)
	if !ok {
		return nil
	}

	var req models.CreateJobRequest
	if !parseBody(c, &req) {
		return nil
	}

	status := models.JobStatus(req.Status)
	if req.Status == "" {
		status = models.JobStatusDraft
	}
	seoTitle := req.SEOTitle
	if seoTitle == "" {
		seoTitle = req.Title
	}
	seoDescription := req.SEODescription
	if seoDescription == "" {
		seoDescription = req.Title
	}

	job := &models.Job{
		JobID:          services.JobSlug(req.Title),
		WorkspaceID:    wsID,
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		LocationType:   req.LocationType,
		EmploymentType: req.EmploymentType,
		Status:         status,
		Description:    req.Description,
		Skills:         pq.StringArray(req.Skills),
		SalaryRange:    req.SalaryRange,
		SEOTitle:       seoTitle,
		SEODescription: seoDescription,
	}
	if err := h.jobs.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create job",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleUpdate edits an existing posting. The business key never changes,
// even when the title does.
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	jobID := c.Params("jobId")

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil || len(updates) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	delete(updates, "id")
	delete(updates, "job_id")
	delete(updates, "workspace_id")
	if raw, ok := updates["status"]; ok {
		status, _ := raw.(string)
		if !models.JobStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid job status",
			})
		}
	}
	if raw, ok := updates["skills"]; ok {
		updates["skills"] = toStringArray(raw)
	}

	if err := h.jobs.Update(jobID, updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update job",
		})
	}

	job, err := h.jobs.FindByJobID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "job not found",
		})
	}
	return c.JSON(job)
}

func toStringArray(raw interface{}) pq.StringArray {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	out := make(pq.StringArray, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
