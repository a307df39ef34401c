package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/neetcode-tracker/backend/internal/complexity"
	"github.com/neetcode-tracker/backend/internal/data"
	"github.com/neetcode-tracker/backend/internal/handler"
	"github.com/neetcode-tracker/backend/internal/infrastructure"
	"github.com/neetcode-tracker/backend/internal/middleware"
	"github.com/neetcode-tracker/backend/internal/repository"
	"github.com/neetcode-tracker/backend/internal/service"
)

func main() {
	// Load configuration
	config := infrastructure.LoadConfig()

	// Initialize logger
	logger, err := infrastructure.NewLogger(config.Server.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.SyncLogger(logger)

	logger.Info("Starting NeetCode Tracker API",
		zap.String("environment", config.Server.Environment),
		zap.Int("port", config.Server.Port),
	)

	// Initialize context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize telemetry
	telemetry, err := infrastructure.NewTelemetry(ctx, &config.Telemetry, logger)
	if err != nil {
		logger.Error("Failed to initialize telemetry", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		telemetry.Shutdown(shutdownCtx)
	}()

	// Create metrics
	metrics, err := telemetry.CreateMetrics()
	if err != nil {
		logger.Error("Failed to create metrics", zap.Error(err))
		os.Exit(1)
	}

	// Initialize database
	database, err := infrastructure.NewDatabase(&config.Database, logger)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	// Seed the admin account, the collection, and the 150 problems
	seeder := data.NewSeeder(database.DB, logger)
	if err := seeder.Seed(&config.Admin); err != nil {
		logger.Error("Failed to seed database", zap.Error(err))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	collectionRepo := repository.NewCollectionRepository(database.DB)
	problemRepo := repository.NewProblemRepository(database.DB)
	solutionRepo := repository.NewSolutionRepository(database.DB)
	noteRepo := repository.NewNoteRepository(database.DB)

	// Complexity estimation is optional; without an API key every
	// solution is simply stored without estimates.
	var estimator complexity.Estimator
	if config.Estimator.APIKey != "" {
		estimator = complexity.NewGeminiEstimator(
			config.Estimator.APIKey,
			config.Estimator.Model,
			config.Estimator.Timeout,
			logger,
		)
	} else {
		estimator = complexity.Disabled()
		logger.Info("Complexity estimation disabled, no API key configured")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, &config.JWT, telemetry.Tracer, logger)
	problemService := service.NewProblemService(problemRepo, collectionRepo, telemetry.Tracer, logger)
	solutionService := service.NewSolutionService(solutionRepo, problemRepo, estimator, metrics, telemetry.Tracer, logger)
	noteService := service.NewNoteService(noteRepo, problemRepo, metrics, telemetry.Tracer, logger)
	progressService := service.NewProgressService(
		problemRepo,
		solutionRepo,
		noteRepo,
		data.RoadmapNodes,
		data.RoadmapEdges,
		config.Activity.Location(),
		telemetry.Tracer,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	collectionHandler := handler.NewCollectionHandler(problemService)
	problemHandler := handler.NewProblemHandler(problemService)
	solutionHandler := handler.NewSolutionHandler(solutionService)
	noteHandler := handler.NewNoteHandler(noteService)
	progressHandler := handler.NewProgressHandler(progressService)

	// Setup Gin router
	if config.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Add global middleware
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))
	router.Use(middleware.TracingMiddleware(telemetry.Tracer))
	router.Use(middleware.MetricsMiddleware(metrics))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database connection failed",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": config.Telemetry.ServiceVersion,
		})
	})

	// Metrics endpoint for Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Read surface (public)
		collections := api.Group("/collections")
		{
			collections.GET("", collectionHandler.GetCollections)
			collections.GET("/:slug", collectionHandler.GetCollection)
			collections.GET("/:slug/problems", collectionHandler.GetCollectionProblems)
		}

		problems := api.Group("/problems")
		{
			problems.GET("/stats", problemHandler.GetProblemStats)
			problems.GET("/:id", problemHandler.GetProblem)
			problems.GET("/:id/solutions", solutionHandler.GetProblemSolutions)
		}

		api.GET("/solutions", solutionHandler.GetSolutions)
		api.GET("/notes", noteHandler.GetNote)

		// Derived views (public)
		api.GET("/progress", progressHandler.GetProgress)
		api.GET("/activity", progressHandler.GetActivity)
		api.GET("/activity/grid", progressHandler.GetActivityGrid)
		api.GET("/roadmap", progressHandler.GetRoadmap)
		api.GET("/roadmap/:category", progressHandler.GetCategoryDetail)
		api.GET("/revision", progressHandler.GetRevision)

		// Write surface (admin only)
		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware(authService))
		admin.Use(middleware.AdminOnly(authService))
		{
			admin.POST("/solutions", solutionHandler.CreateSolution)
			admin.PUT("/solutions/:id", solutionHandler.UpdateSolution)
			admin.DELETE("/solutions/:id", solutionHandler.DeleteSolution)
			admin.POST("/notes", noteHandler.SaveNote)
			admin.PATCH("/problems/:id/description", problemHandler.UpdateDescription)
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      router,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("HTTP server starting",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
