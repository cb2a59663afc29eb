package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hasinthainduwara/ClarityHub-Backend/internal/config"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/handlers"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/logger"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/middleware"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/repository"
	"github.com/hasinthainduwara/ClarityHub-Backend/internal/service"
	"github.com/hasinthainduwara/ClarityHub-Backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env for local development; a missing file is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting ClarityHub API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	moodRepo := repository.NewMoodRepository(supabaseClient)

	// Initialize services
	moodService := service.NewMoodService(moodRepo)
	analyticsService := service.NewAnalyticsService(moodRepo)
	insightService := service.NewInsightService(moodRepo)

	// Initialize handlers
	moodHandler := handlers.NewMoodHandler(moodService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightHandler := handlers.NewInsightHandler(insightService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// Mood routes
	mood := router.Group("/api/mood")
	mood.Use(middleware.Auth(supabaseClient))
	{
		mood.POST("", middleware.RateLimitWrite(), moodHandler.RecordMood)
		mood.GET("/history", moodHandler.GetHistory)
		mood.GET("/trends", analyticsHandler.GetTrends)
		mood.GET("/stats", analyticsHandler.GetStats)
		mood.GET("/insights", insightHandler.GetInsights)
		mood.GET("/patterns", insightHandler.GetPatterns)
		mood.GET("/export", moodHandler.ExportEntries)
		mood.DELETE("/:id", middleware.RateLimitWrite(), moodHandler.DeleteEntry)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
