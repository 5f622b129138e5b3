package models

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateJobRequest struct {
	Title          string   `json:"title" validate:"required,min=2"`
	Department     string   `json:"department" validate:"required"`
	Location       string   `json:"location"`
	LocationType   string   `json:"location_type" validate:"omitempty,oneof=Office Remote Hybrid Outdoor"`
	EmploymentType string   `json:"employment_type" validate:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Status         string   `json:"status" validate:"omitempty,oneof=Draft Live Ended"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	SalaryRange    string   `json:"salary_range"`
	SEOTitle       string   `json:"seo_title"`
	SEODescription string   `json:"seo_description"`
}

type UpdateUserRequest struct {
	Role   *string `json:"role" validate:"omitempty,oneof=hr admin"`
	Access *bool   `json:"access"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type MoveRequest struct {
	ApplicantID int64  `json:"applicant_id" validate:"required"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to" validate:"required"`
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

// ListResponse is the common paginated envelope: rows plus the exact total so
// clients can compute ceil(count/limit) pages.
type ListResponse[T any] struct {
	Data       []T   `json:"data"`
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
