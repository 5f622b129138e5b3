package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hirestack/recruitdesk/internal/config"
	"hirestack/recruitdesk/internal/handlers"
	"hirestack/recruitdesk/internal/middleware"
	"hirestack/recruitdesk/internal/repositories"
	"hirestack/recruitdesk/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	applicantRepo := repositories.NewApplicantRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	userRepo := repositories.NewUserRepository(db)
	workspaceRepo := repositories.NewWorkspaceRepository(db)
	savedRepo := repositories.NewSavedApplicantRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	boardService := services.NewBoardService(applicantRepo)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	applicantHandler := handlers.NewApplicantHandler(applicantRepo, boardService)
	boardHandler := handlers.NewBoardHandler(boardService)
	commentHandler := handlers.NewCommentHandler(commentRepo, applicantRepo)
	savedHandler := handlers.NewSavedHandler(savedRepo)
	jobHandler := handlers.NewJobHandler(jobRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceRepo)
	dashboardHandler := handlers.NewDashboardHandler(applicantRepo, jobRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "RecruitDesk API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3001",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth surface: signup/signin are open; me works for pending accounts so
	// the client can render the approval screen.
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.HandleSignup)
	auth.Post("/signin", authHandler.HandleSignin)
	auth.Post("/signout", authHandler.HandleSignout)
	auth.Get("/me", middleware.Authenticate(authService, userRepo), authHandler.HandleMe)

	// Dashboard subtree: session plus access flag re-checked on every request.
	dashboard := api.Group("/",
		middleware.Authenticate(authService, userRepo),
		middleware.RequireAccess(),
	)

	dashboard.Get("/applicants", applicantHandler.HandleList)
	dashboard.Get("/applicants/export", applicantHandler.HandleExport)
	dashboard.Post("/applicants", applicantHandler.HandleCreate)
	dashboard.Get("/applicants/:id", applicantHandler.HandleGet)
	dashboard.Patch("/applicants/:id", applicantHandler.HandleUpdate)
	dashboard.Patch("/applicants/:id/status", applicantHandler.HandleStatusChange)
	dashboard.Delete("/applicants/:id", applicantHandler.HandleDelete)

	dashboard.Get("/applicants/:id/comments", commentHandler.HandleListByApplicant)
	dashboard.Post("/applicants/:id/comments", commentHandler.HandleCreate)
	dashboard.Get("/comments", commentHandler.HandleListAll)
	dashboard.Delete("/comments/:commentId", commentHandler.HandleDelete)

	dashboard.Get("/applicants/:id/saved", savedHandler.HandleIsSaved)
	dashboard.Post("/applicants/:id/save", savedHandler.HandleSave)
	dashboard.Delete("/applicants/:id/save", savedHandler.HandleUnsave)
	dashboard.Get("/saved", savedHandler.HandleList)

	dashboard.Get("/kanban", boardHandler.HandleGetBoard)
	dashboard.Post("/kanban/move", boardHandler.HandleMove)

	dashboard.Get("/jobs", jobHandler.HandleList)
	dashboard.Post("/jobs", jobHandler.HandleCreate)
	dashboard.Get("/jobs/:jobId", jobHandler.HandleGet)
	dashboard.Patch("/jobs/:jobId", jobHandler.HandleUpdate)

	dashboard.Get("/workspaces", workspaceHandler.HandleList)
	dashboard.Post("/workspaces", workspaceHandler.HandleCreate)
	dashboard.Get("/workspaces/:id", workspaceHandler.HandleGet)

	dashboard.Get("/filters/suggestions", applicantHandler.HandleSuggestions)
	dashboard.Get("/dashboard/stats", dashboardHandler.HandleStats)

	dashboard.Get("/users", userHandler.HandleList)
	dashboard.Patch("/users/:id", middleware.RequireAdmin(), userHandler.HandleUpdate)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "RecruitDesk API",
			"version": "1.0.0",
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
