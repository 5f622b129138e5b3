package repositories

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"hirestack/recruitdesk/internal/models"
)

// Sentinel selector values coming from the dashboard filter bar.
const (
	FilterAll        = "all"
	FilterUnassigned = "unassigned"
)

// ApplicantFilter is the full set of dashboard filter selections. All active
// predicates are conjunctive. The zero value matches everything.
type ApplicantFilter struct {
	Search        string
	JobID         string
	Status        string
	Skills        []string
	MinExperience *float64
	Companies     []string
	Domains       []string
	DateFrom      *time.Time
	DateTo        *time.Time
	AssignedTo    string
}

// Apply appends the active predicates to an applicants query. Ordering is
// left to the caller (always applied_at DESC in practice).
func (f ApplicantFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("applicants.name ILIKE ? OR applicants.email ILIKE ?", like, like)
	}
	if f.JobID != "" && f.JobID != FilterAll {
		q = q.Where("applicants.job_id = ?", f.JobID)
	}
	if f.Status != "" && f.Status != FilterAll {
		q = q.Where("applicants.status = ?", strings.ToLower(f.Status))
	}
	if len(f.Skills) > 0 {
		q = q.Where("applicants.skills && ?", pq.StringArray(f.Skills))
	}
	if f.MinExperience != nil {
		q = q.Where("applicants.total_experience_years >= ?", *f.MinExperience)
	}
	if len(f.Companies) > 0 {
		q = q.Where("applicants.previous_companies_names && ?", pq.StringArray(f.Companies))
	}
	if len(f.Domains) > 0 {
		q = q.Where("applicants.domains_worked && ?", pq.StringArray(f.Domains))
	}
	if f.DateFrom != nil {
		q = q.Where("applicants.applied_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("applicants.applied_at <= ?", *f.DateTo)
	}
	switch {
	case f.AssignedTo == "" || f.AssignedTo == FilterAll:
	case f.AssignedTo == FilterUnassigned:
		q = q.Where("applicants.assigned_to IS NULL")
	default:
		q = q.Where("applicants.assigned_to = ?", f.AssignedTo)
	}
	return q
}

// Matches mirrors Apply in memory: the same conjunction evaluated against a
// single applicant. The kanban board uses it for its client-side search box.
func (f ApplicantFilter) Matches(a *models.Applicant) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Name), s) &&
			!strings.Contains(strings.ToLower(a.Email), s) {
			return false
		}
	}
	if f.JobID != "" && f.JobID != FilterAll && a.JobID != f.JobID {
		return false
	}
	if f.Status != "" && f.Status != FilterAll &&
		string(a.Status) != strings.ToLower(f.Status) {
		return false
	}
	if len(f.Skills) > 0 && !overlaps(a.Skills, f.Skills) {
		return false
	}
	if f.MinExperience != nil {
		if a.TotalExperienceYears == nil || *a.TotalExperienceYears < *f.MinExperience {
			return false
		}
	}
	if len(f.Companies) > 0 && !overlaps(a.PreviousCompanies, f.Companies) {
		return false
	}
	if len(f.Domains) > 0 && !overlaps(a.DomainsWorked, f.Domains) {
		return false
	}
	if f.DateFrom != nil && a.AppliedAt.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && a.AppliedAt.After(*f.DateTo) {
		return false
	}
	switch {
	case f.AssignedTo == "" || f.AssignedTo == FilterAll:
	case f.AssignedTo == FilterUnassigned:
		if a.AssignedTo != nil {
			return false
		}
	default:
		if a.AssignedTo == nil || a.AssignedTo.String() != f.AssignedTo {
			return false
		}
	}
	return true
}

func overlaps(have []string, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
