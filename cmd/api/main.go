package main

import (
	"context"
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

	"rizkypratama/ai-interviewer/internal/config"
	"rizkypratama/ai-interviewer/internal/handlers"
	"rizkypratama/ai-interviewer/internal/repositories"
	"rizkypratama/ai-interviewer/internal/services"
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
	candidateRepo := repositories.NewCandidateRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	resumeParser := services.NewResumeParserService()
	log.Println("✅ Services initialized successfully")

	// Build the provider chain in fixed priority order; missing keys simply
	// leave the chain shorter, empty chain means pure-heuristic mode
	var providers []services.Provider

	if cfg.Gemini.APIKey != "" {
		geminiProvider, err := services.NewGeminiProvider(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Gemini provider: %v", err)
		}
		providers = append(providers, geminiProvider)
		log.Println("✅ Gemini provider initialized")
	}

	if cfg.OpenAI.APIKey != "" {
		providers = append(providers, services.NewOpenAIProvider(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.BaseURL,
			cfg.OpenAI.Timeout,
		))
		log.Println("✅ OpenAI provider initialized")
	}

	if len(providers) == 0 {
		log.Println("⚠️  No provider API keys found - running in heuristic-only mode")
	}

	aiService := services.NewAIService(providers)
	interviewService := services.NewInterviewService(candidateRepo, aiService)
	log.Println("✅ Interview service initialized")

	// Initialize rescore worker
	worker := services.NewWorker(candidateRepo, aiService, cfg.Worker.Concurrency)
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(
		candidateRepo,
		storageService,
		resumeParser,
		cfg.Storage.MaxFileSize,
	)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo)
	interviewHandler := handlers.NewInterviewHandler(interviewService, worker)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Interview Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
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

	// API endpoints
	api.Post("/resume/upload", resumeHandler.HandleUpload)
	api.Get("/candidates", candidateHandler.HandleList)
	api.Get("/candidates/:id", candidateHandler.HandleGet)
	api.Put("/candidates/:id", candidateHandler.HandleUpdate)
	api.Post("/interview/start", interviewHandler.HandleStart)
	api.Post("/interview/answer", interviewHandler.HandleSubmitAnswer)
	api.Post("/interview/pause-resume", interviewHandler.HandlePauseResume)
	api.Get("/interview/:candidateId", interviewHandler.HandleGetInterview)
	api.Post("/admin/rescore/:candidateId", interviewHandler.HandleRescore)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Interview Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resume/upload",
				"GET /api/v1/candidates",
				"GET /api/v1/candidates/:id",
				"PUT /api/v1/candidates/:id",
				"POST /api/v1/interview/start",
				"POST /api/v1/interview/answer",
				"POST /api/v1/interview/pause-resume",
				"GET /api/v1/interview/:candidateId",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
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
