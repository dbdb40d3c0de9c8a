package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/analyzer"
	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating a logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !cfg.EnvLoaded {
		log.Info("no .env file found, using process environment")
	}
	if err := cfg.ValidateEmbedding(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	matchRepo := repositories.NewMatchJobRepository(db)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatal("failed to create upload directory", zap.Error(err))
	}

	extractor := services.NewExtractorService(services.NewPDFParserService())

	embedder, closeEmbedder, err := services.NewEmbedder(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize embeddings", zap.Error(err))
	}
	defer closeEmbedder()

	// Qdrant only backs stored-résumé search, so the API still serves
	// analysis and matching without it.
	var index services.QdrantService
	var indexer services.ResumeIndexer
	qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, log)
	if err == nil {
		err = qdrantService.InitCollection(ctx)
	}
	if err != nil {
		log.Warn("qdrant unavailable, résumé search disabled", zap.Error(err))
	} else {
		index = qdrantService
		indexer = services.NewResumeIndexer(embedder, qdrantService, services.NewTextChunker(), log)
	}

	analysisService := services.NewAnalysisService(analysisRepo, extractor, analyzer.NewRecommender(nil), indexer, log)
	matchService := services.NewMatchService(matchRepo, docRepo, extractor, embedder, index, cfg.Worker.MatchConcurrency, log)

	// Initialize worker
	worker := services.NewWorker(matchRepo, matchService, cfg.Worker.Concurrency, cfg.Worker.PollInterval, log)
	worker.Start(ctx)

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(docRepo, storageService, cfg.Storage.MaxFileSize)
	routes := handlers.Handlers{
		Upload:   uploadHandler,
		Analyze:  handlers.NewAnalyzeHandler(uploadHandler, analysisService),
		Match:    handlers.NewMatchHandler(uploadHandler, matchRepo, worker),
		Search:   handlers.NewSearchHandler(matchService),
		Feedback: handlers.NewFeedbackHandler(feedbackRepo),
		Admin:    handlers.NewAdminHandler(analysisRepo, feedbackRepo),
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		// several résumés fit in one match request
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 10,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, routes, cfg.Admin)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		worker.Stop()
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Server.Env))

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
