package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/planora/budget-api/config"
	_ "github.com/planora/budget-api/docs"
	"github.com/planora/budget-api/internal/analytics"
	"github.com/planora/budget-api/internal/cache"
	"github.com/planora/budget-api/internal/database"
	"github.com/planora/budget-api/internal/handlers"
	"github.com/planora/budget-api/internal/middleware"
	"github.com/planora/budget-api/internal/repository"
	"github.com/planora/budget-api/internal/rules"
	"github.com/planora/budget-api/internal/services"
)

// @title Planora Budget API
// @version 1.0
// @description Budget recommendation and adjustment engine for the events marketplace.
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ConfigureLogging()

	// Load adjustment rules (compiled defaults unless RULES_FILE overrides)
	ruleSet, ruleWarnings, err := rules.Load(cfg.RulesFile)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}
	for _, w := range ruleWarnings {
		log.Printf("rules: %s", w)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize the analytics sink for recommendation feedback
	sink, err := buildSink(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize analytics sink: %v", err)
	}
	defer sink.Close()

	// Initialize caches
	memCache := cache.NewMemoryCache(5 * time.Minute)

	// Initialize repositories
	pricingRepo := repository.NewPricingRepository(db.Pool)
	packageRepo := repository.NewPackageRepository(db.Pool)
	trackingRepo := repository.NewTrackingRepository(db.Pool)
	eventRepo := repository.NewEventRepository(db.Pool)

	// Initialize services
	pricingSvc := services.NewPricingService(pricingRepo, memCache)
	seasonalSvc := services.NewSeasonalService(ruleSet)
	locationSvc := services.NewLocationService(ruleSet)
	recommendationSvc := services.NewRecommendationService(pricingSvc, seasonalSvc, locationSvc, ruleSet)
	packageSvc := services.NewPackageService(packageRepo, memCache)
	trackingSvc := services.NewTrackingService(trackingRepo, eventRepo)
	validationSvc := services.NewValidationService()
	budgetSvc := services.NewBudgetService(eventRepo, recommendationSvc, trackingSvc, validationSvc)
	suggestionSvc := services.NewSuggestionService(ruleSet)
	feedbackSvc := services.NewFeedbackService(sink)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(recommendationSvc, budgetSvc, suggestionSvc, validationSvc)
	packageHandler := handlers.NewPackageHandler(packageSvc, budgetSvc)
	trackingHandler := handlers.NewTrackingHandler(trackingSvc)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackSvc)
	exportHandler := handlers.NewExportHandler(budgetSvc)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.ValidateUser())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Budget routes
	v1.POST("/budget/recommendations", budgetHandler.Recommend)
	v1.POST("/budget/suggestions", budgetHandler.Suggestions)
	v1.POST("/budget/validate", budgetHandler.Validate)
	v1.POST("/budget/packages/apply", packageHandler.Apply)
	v1.POST("/budget/feedback", feedbackHandler.Submit)

	// Package catalog routes
	v1.GET("/packages", packageHandler.List)

	// Event-scoped routes. Writes need an identified user; the platform
	// gateway fills in X-User-ID.
	v1.GET("/events/:id/budget", budgetHandler.GetEventBudget)
	v1.POST("/events/:id/budget/adjustments", middleware.RequireAuth(), budgetHandler.SubmitAdjustments)
	v1.GET("/events/:id/budget/tracking", trackingHandler.Summary)
	v1.POST("/events/:id/budget/tracking", middleware.RequireAuth(), trackingHandler.RecordActual)
	v1.GET("/events/:id/budget/export", exportHandler.Export)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}

// buildSink picks the feedback destination from configuration: the analytics
// warehouse when a ClickHouse DSN is set, the HTTP collector when only a URL
// is, and a discard sink otherwise.
func buildSink(ctx context.Context, cfg *config.Config) (analytics.Sink, error) {
	if cfg.ClickHouseDSN != "" {
		return analytics.NewClickHouseSink(ctx, cfg.ClickHouseDSN)
	}
	if cfg.AnalyticsURL != "" {
		return analytics.NewHTTPSink(cfg.AnalyticsURL), nil
	}
	return analytics.NewNopSink(), nil
}
