package main

import (
	"log"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"hirestack/recruitdesk/internal/config"
	"hirestack/recruitdesk/internal/models"
	"hirestack/recruitdesk/internal/repositories"
	"hirestack/recruitdesk/internal/services"
)

// Seeds a demo workspace with an approved admin account, two live jobs and a
// handful of applicants spread across the pipeline. Safe to run once against
// an empty database.
func main() {
	log.Println("🚀 Starting demo seed...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	workspaceRepo := repositories.NewWorkspaceRepository(db)
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicantRepo := repositories.NewApplicantRepository(db)

	workspace := &models.Workspace{Name: "Acme Talent"}
	if err := workspaceRepo.Create(workspace); err != nil {
		log.Fatalf("❌ Failed to create workspace: %v", err)
	}
	log.Printf("✅ Workspace %s created", workspace.ID)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	admin := &models.User{
		Name:         "Demo Admin",
		Email:        "admin@acme.test",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Access:       true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}
	log.Printf("✅ Admin user %s created (admin@acme.test / admin12345)", admin.ID)

	jobs := []*models.Job{
		{
			JobID:          services.JobSlug("Senior Backend Engineer"),
			WorkspaceID:    workspace.ID,
			Title:          "Senior Backend Engineer",
			Department:     "Engineering",
			Location:       "Bengaluru",
			LocationType:   "Hybrid",
			EmploymentType: "Full-time",
			Status:         models.JobStatusLive,
			Skills:         pq.StringArray{"Go", "PostgreSQL", "Kubernetes"},
			SalaryRange:    "30-45 LPA",
			SEOTitle:       "Senior Backend Engineer",
			SEODescription: "Senior Backend Engineer",
		},
		{
			JobID:          services.JobSlug("Product Designer"),
			WorkspaceID:    workspace.ID,
			Title:          "Product Designer",
			Department:     "Design",
			Location:       "Remote",
			LocationType:   "Remote",
			EmploymentType: "Full-time",
			Status:         models.JobStatusLive,
			Skills:         pq.StringArray{"Figma", "Prototyping"},
			SalaryRange:    "18-25 LPA",
			SEOTitle:       "Product Designer",
			SEODescription: "Product Designer",
		},
	}
	for _, job := range jobs {
		if err := jobRepo.Create(job); err != nil {
			log.Fatalf("❌ Failed to create job %q: %v", job.Title, err)
		}
		log.Printf("✅ Job created: %s (%s)", job.Title, job.JobID)
	}

	exp := func(v float64) *float64 { return &v }
	applicants := []*models.Applicant{
		{
			Name:                 "Priya Sharma",
			Email:                "priya.sharma@example.com",
			MobileNumber:         "+91 98100 00001",
			CurrentJobTitle:      "Backend Engineer",
			TotalExperienceYears: exp(6.5),
			Skills:               pq.StringArray{"Go", "PostgreSQL", "Redis"},
			DomainsWorked:        pq.StringArray{"Fintech"},
			PreviousCompanies:    pq.StringArray{"Razorpay"},
			CurrentCTC:           "28 LPA",
			ExpectedCTC:          "38 LPA",
			NoticePeriod:         "60 days",
			Status:               models.StatusInterview,
			JobID:                jobs[0].JobID,
		},
		{
			Name:                 "Arun Mehta",
			Email:                "arun.mehta@example.com",
			CurrentJobTitle:      "Software Engineer II",
			TotalExperienceYears: exp(4),
			Skills:               pq.StringArray{"Go", "Docker"},
			DomainsWorked:        pq.StringArray{"E-commerce"},
			PreviousCompanies:    pq.StringArray{"Flipkart"},
			Status:               models.StatusScreening,
			JobID:                jobs[0].JobID,
		},
		{
			Name:                 "Sneha Iyer",
			Email:                "sneha.iyer@example.com",
			CurrentJobTitle:      "Product Designer",
			TotalExperienceYears: exp(5),
			Skills:               pq.StringArray{"Figma", "User Research"},
			DomainsWorked:        pq.StringArray{"SaaS"},
			PreviousCompanies:    pq.StringArray{"Freshworks"},
			Status:               models.StatusNew,
			JobID:                jobs[1].JobID,
		},
		{
			Name:                 "Rahul Verma",
			Email:                "rahul.verma@example.com",
			CurrentJobTitle:      "Staff Engineer",
			TotalExperienceYears: exp(9),
			Skills:               pq.StringArray{"Go", "Kafka", "Kubernetes"},
			DomainsWorked:        pq.StringArray{"Fintech", "Payments"},
			PreviousCompanies:    pq.StringArray{"PhonePe", "Paytm"},
			Status:               models.StatusOffer,
			JobID:                jobs[0].JobID,
		},
	}
	for i, applicant := range applicants {
		applicant.WorkspaceID = workspace.ID
		applicant.AppliedAt = time.Now().AddDate(0, 0, -i*3)
		if err := applicantRepo.Create(applicant); err != nil {
			log.Fatalf("❌ Failed to create applicant %q: %v", applicant.Name, err)
		}
	}
	log.Printf("✅ %d applicants created", len(applicants))

	log.Println("🎉 Demo seed complete")
}
