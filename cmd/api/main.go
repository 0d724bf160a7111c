package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hireflow/interview-api/internal/config"
	"hireflow/interview-api/internal/handlers"
	"hireflow/interview-api/internal/middleware"
	"hireflow/interview-api/internal/models"
	"hireflow/interview-api/internal/repositories"
	"hireflow/interview-api/internal/services"
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

	interviewRepo := repositories.NewInterviewRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	llmService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize Qdrant
	vectorService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorService.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize services
	pdfExtractor := services.NewPDFExtractor()
	chunker := services.NewTextChunker()
	resumeService := services.NewResumeService(pdfExtractor, chunker, llmService, vectorService)
	retriever := services.NewContextRetriever(llmService, vectorService)
	interviewer := services.NewInterviewerService(retriever, llmService)
	reportService := services.NewReportService()
	mailerService := services.NewMailerService(services.MailerConfig{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		User:     cfg.Email.User,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
		HREmail:  cfg.Email.HREmail,
	})
	dispatcher := services.NewDispatcher()
	finalizer := services.NewFinalizerService(llmService, interviewRepo, reportService, mailerService, dispatcher)
	tokenVerifier := services.NewIdentityVerifier(cfg.Auth.IdentityURL, cfg.Auth.ServiceKey)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(resumeService, cfg.Upload.MaxFileSize)
	chatHandler := handlers.NewChatHandler(interviewer)
	interviewHandler := handlers.NewInterviewHandler(finalizer, interviewRepo, reportService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "HireFlow AI Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: originChecker(cfg),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status:    "Active",
			Message:   "HireFlow AI Backend is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Routes
	api := app.Group("/api")
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/chat", chatHandler.HandleChat)

	requireAuth := middleware.RequireAuth(tokenVerifier)
	api.Post("/interview/end", requireAuth, interviewHandler.HandleEndInterview)
	api.Get("/interviews", requireAuth, interviewHandler.HandleListInterviews)
	api.Get("/interviews/:id/export", requireAuth, interviewHandler.HandleExportInterview)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		// Drain in-flight report/email work
		dispatcher.Stop()
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// originChecker allows no-origin requests, any localhost origin, any origin
// on the hosting-platform suffix, plus the configured allow-list.
func originChecker(cfg *config.Config) func(origin string) bool {
	return func(origin string) bool {
		if origin == "" {
			return true
		}
		if strings.Contains(origin, "localhost") {
			return true
		}
		if cfg.Server.CORSHostingSuffix != "" && strings.Contains(origin, cfg.Server.CORSHostingSuffix) {
			return true
		}
		for _, allowed := range cfg.Server.CORSAllowedOrigins {
			if origin == allowed {
				return true
			}
		}
		return false
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
