package repositories

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirestack/recruitdesk/internal/models"
)

func ptr[T any](v T) *T { return &v }

func baseApplicant() models.Applicant {
	return models.Applicant{
		ID:        1,
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		JobID:     "backend-engineer-a1b2",
		Status:    models.StatusInterview,
		Skills:    []string{"Go", "Postgres"},
		AppliedAt: time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestMatchesEmptyFilterMatchesEverything(t *testing.T) {
	a := baseApplicant()
	assert.True(t, ApplicantFilter{}.Matches(&a))
}

func TestMatchesSearchIsCaseInsensitiveOnNameOrEmail(t *testing.T) {
	a := baseApplicant()

	assert.True(t, ApplicantFilter{Search: "JOHN"}.Matches(&a))
	assert.True(t, ApplicantFilter{Search: "doe@example"}.Matches(&a))
	assert.False(t, ApplicantFilter{Search: "smith"}.Matches(&a))
}

func TestMatchesSentinels(t *testing.T) {
	a := baseApplicant()

	assert.True(t, ApplicantFilter{JobID: FilterAll, Status: FilterAll, AssignedTo: FilterAll}.Matches(&a))
	assert.True(t, ApplicantFilter{AssignedTo: FilterUnassigned}.Matches(&a))

	assignee := uuid.New()
	a.AssignedTo = &assignee
	assert.False(t, ApplicantFilter{AssignedTo: FilterUnassigned}.Matches(&a))
	assert.True(t, ApplicantFilter{AssignedTo: assignee.String()}.Matches(&a))
	assert.False(t, ApplicantFilter{AssignedTo: uuid.NewString()}.Matches(&a))
}

func TestMatchesStatusIgnoresFilterCase(t *testing.T) {
	a := baseApplicant()

	assert.True(t, ApplicantFilter{Status: "Interview"}.Matches(&a))
	assert.False(t, ApplicantFilter{Status: "offer"}.Matches(&a))
}

func TestMatchesTagOverlap(t *testing.T) {
	a := baseApplicant()

	assert.True(t, ApplicantFilter{Skills: []string{"Rust", "Go"}}.Matches(&a))
	assert.False(t, ApplicantFilter{Skills: []string{"Rust"}}.Matches(&a))
	assert.False(t, ApplicantFilter{Companies: []string{"Acme"}}.Matches(&a))

	a.PreviousCompanies = []string{"Acme", "Initech"}
	assert.True(t, ApplicantFilter{Companies: []string{"Initech"}}.Matches(&a))
}

func TestMatchesExperienceFloor(t *testing.T) {
	a := baseApplicant()

	// Unknown experience never satisfies a floor.
	assert.False(t, ApplicantFilter{MinExperience: ptr(2.0)}.Matches(&a))

	a.TotalExperienceYears = ptr(5.0)
	assert.True(t, ApplicantFilter{MinExperience: ptr(5.0)}.Matches(&a))
	assert.False(t, ApplicantFilter{MinExperience: ptr(5.5)}.Matches(&a))
}

func TestMatchesDateRangeInclusive(t *testing.T) {
	a := baseApplicant()

	assert.True(t, ApplicantFilter{
		DateFrom: ptr(a.AppliedAt),
		DateTo:   ptr(a.AppliedAt),
	}.Matches(&a))
	assert.False(t, ApplicantFilter{DateFrom: ptr(a.AppliedAt.Add(time.Second))}.Matches(&a))
	assert.False(t, ApplicantFilter{DateTo: ptr(a.AppliedAt.Add(-time.Second))}.Matches(&a))
}

func TestMatchesSearchWithStatusConjunction(t *testing.T) {
	f := ApplicantFilter{Search: "john", Status: "interview"}

	match := baseApplicant()
	assert.True(t, f.Matches(&match))

	wrongStatus := baseApplicant()
	wrongStatus.Status = models.StatusNew
	assert.False(t, f.Matches(&wrongStatus))

	wrongName := baseApplicant()
	wrongName.Name = "Jane Roe"
	wrongName.Email = "jane@example.com"
	assert.False(t, f.Matches(&wrongName))
}

// TestMatchesAgainstReference cross-checks the conjunction against a
// predicate-list reference over randomized applicants and filters.
func TestMatchesAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	names := []string{"John Doe", "Jane Roe", "Max Mustermann", "Ana Souza"}
	tags := []string{"Go", "Rust", "Python", "React", "SQL"}
	companies := []string{"Acme", "Initech", "Globex"}
	jobIDs := []string{"backend-1", "frontend-2", "data-3"}
	assignees := []uuid.UUID{uuid.New(), uuid.New()}
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	randomTags := func(pool []string) []string {
		var out []string
		for _, tag := range pool {
			if rng.Intn(2) == 0 {
				out = append(out, tag)
			}
		}
		return out
	}

	randomApplicant := func(i int) models.Applicant {
		a := models.Applicant{
			ID:                int64(i),
			Name:              names[rng.Intn(len(names))],
			Email:             fmt.Sprintf("user%d@example.com", i),
			JobID:             jobIDs[rng.Intn(len(jobIDs))],
			Status:            models.PipelineStatuses[rng.Intn(len(models.PipelineStatuses))],
			Skills:            randomTags(tags),
			PreviousCompanies: randomTags(companies),
			DomainsWorked:     randomTags(tags),
			AppliedAt:         epoch.AddDate(0, 0, rng.Intn(120)),
		}
		if rng.Intn(2) == 0 {
			a.TotalExperienceYears = ptr(float64(rng.Intn(15)))
		}
		if rng.Intn(2) == 0 {
			a.AssignedTo = &assignees[rng.Intn(len(assignees))]
		}
		return a
	}

	randomFilter := func() ApplicantFilter {
		f := ApplicantFilter{}
		if rng.Intn(2) == 0 {
			f.Search = strings.ToLower(names[rng.Intn(len(names))][:3])
		}
		if rng.Intn(2) == 0 {
			f.JobID = jobIDs[rng.Intn(len(jobIDs))]
		}
		if rng.Intn(2) == 0 {
			f.Status = string(models.PipelineStatuses[rng.Intn(len(models.PipelineStatuses))])
		}
		if rng.Intn(3) == 0 {
			f.Skills = randomTags(tags)
		}
		if rng.Intn(3) == 0 {
			f.MinExperience = ptr(float64(rng.Intn(10)))
		}
		if rng.Intn(3) == 0 {
			f.Companies = randomTags(companies)
		}
		if rng.Intn(3) == 0 {
			f.DateFrom = ptr(epoch.AddDate(0, 0, rng.Intn(120)))
		}
		if rng.Intn(3) == 0 {
			f.DateTo = ptr(epoch.AddDate(0, 0, rng.Intn(120)))
		}
		switch rng.Intn(4) {
		case 0:
			f.AssignedTo = FilterUnassigned
		case 1:
			f.AssignedTo = assignees[rng.Intn(len(assignees))].String()
		}
		return f
	}

	reference := func(f ApplicantFilter, a *models.Applicant) bool {
		preds := []func() bool{
			func() bool {
				if f.Search == "" {
					return true
				}
				s := strings.ToLower(f.Search)
				return strings.Contains(strings.ToLower(a.Name), s) ||
					strings.Contains(strings.ToLower(a.Email), s)
			},
			func() bool { return f.JobID == "" || f.JobID == FilterAll || a.JobID == f.JobID },
			func() bool {
				return f.Status == "" || f.Status == FilterAll ||
					string(a.Status) == strings.ToLower(f.Status)
			},
			func() bool { return len(f.Skills) == 0 || anyShared(a.Skills, f.Skills) },
			func() bool {
				return f.MinExperience == nil ||
					(a.TotalExperienceYears != nil && *a.TotalExperienceYears >= *f.MinExperience)
			},
			func() bool { return len(f.Companies) == 0 || anyShared(a.PreviousCompanies, f.Companies) },
			func() bool { return len(f.Domains) == 0 || anyShared(a.DomainsWorked, f.Domains) },
			func() bool { return f.DateFrom == nil || !a.AppliedAt.Before(*f.DateFrom) },
			func() bool { return f.DateTo == nil || !a.AppliedAt.After(*f.DateTo) },
			func() bool {
				switch f.AssignedTo {
				case "", FilterAll:
					return true
				case FilterUnassigned:
					return a.AssignedTo == nil
				default:
					return a.AssignedTo != nil && a.AssignedTo.String() == f.AssignedTo
				}
			},
		}
		for _, p := range preds {
			if !p() {
				return false
			}
		}
		return true
	}

	applicants := make([]models.Applicant, 200)
	for i := range applicants {
		applicants[i] = randomApplicant(i)
	}

	for trial := 0; trial < 100; trial++ {
		f := randomFilter()
		for i := range applicants {
			got := f.Matches(&applicants[i])
			want := reference(f, &applicants[i])
			require.Equal(t, want, got,
				"trial %d applicant %d filter %+v", trial, i, f)
		}
	}
}

func anyShared(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}
