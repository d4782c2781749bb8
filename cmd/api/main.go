// Motivation Tracker API
//
// REST API for daily yes/no habit tracking with derived scores and sleep metrics.
//
//	@title			Motivation Tracker API
//	@version		1.0
//	@description	Track daily habits with yes/no questions, derived scores, and overnight sleep metrics.
//
//	@BasePath	/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//
//	@tag.name			auth
//	@tag.description	Registration and login endpoints
//
//	@tag.name			questions
//	@tag.description	Question catalog endpoints
//
//	@tag.name			records
//	@tag.description	Daily record endpoints
//
//	@tag.name			stats
//	@tag.description	History statistics and chart endpoints
//
//	@tag.name			insights
//	@tag.description	LLM-backed insight endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/ymurata/motivation-tracker/internal/api"
	"github.com/ymurata/motivation-tracker/internal/api/handler"
	"github.com/ymurata/motivation-tracker/internal/auth"
	"github.com/ymurata/motivation-tracker/internal/config"
	"github.com/ymurata/motivation-tracker/internal/domain"
	"github.com/ymurata/motivation-tracker/internal/llm"
	"github.com/ymurata/motivation-tracker/internal/repository"
	"github.com/ymurata/motivation-tracker/internal/seed"
	"github.com/ymurata/motivation-tracker/internal/service"
	"github.com/ymurata/motivation-tracker/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize tracing (no-op when no OTLP endpoint is configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "motivation-tracker-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Question{}, &domain.DailyRecord{}, &domain.Answer{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	} else {
		// The question catalog must exist even without demo data.
		if _, err := seed.SeedQuestions(db); err != nil {
			log.Fatalf("Failed to seed question catalog: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	recordRepo := repository.NewDailyRecordRepository(db)

	// Initialize token manager and services
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	recordService := service.NewRecordService(recordRepo, questionRepo, userRepo)
	statsService := service.NewStatsService(recordRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(statsService, openaiClient, questionRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionRepo)
	recordHandler := handler.NewRecordHandler(recordService)
	statsHandler := handler.NewStatsHandler(statsService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(tokens, authHandler, userHandler, questionHandler, recordHandler, statsHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
