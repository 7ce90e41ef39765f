package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/publisher"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/gemini"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/metrics"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Database (publication log; optional)
	var dbPool *pgxpool.Pool
	var publicationRepo domain.PublicationRepository
	if cfg.DBUrl != "" {
		dbPool, err = database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		publicationRepo = postgres.NewPublicationRepository(dbPool)
	}

	// 5. Setup Publisher (GitHub) and Gemini client
	sitePublisher := publisher.NewGitHubPublisher(cfg.GitHubToken, cfg.GitHubOwner)

	var llm usecase.Completer
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Warn("Gemini client unavailable, screening endpoint disabled", "error", err)
		} else {
			llm = client
		}
	}

	// 6. Setup Metrics
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	portfolioUC := usecase.NewPortfolioUsecase(sitePublisher, publicationRepo, validate, recorder, cfg.DeleteOrphanRepos)
	screeningUC := usecase.NewScreeningUsecase(llm, recorder)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PortfolioUC: portfolioUC,
		ScreeningUC: screeningUC,
		HealthUC:    healthUC,
		Registry:    registry,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
