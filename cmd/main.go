package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hanriver/traffic_hazard_system/internal/config"
	v1 "github.com/hanriver/traffic_hazard_system/internal/handler/http/v1"
	"github.com/hanriver/traffic_hazard_system/internal/observability"
	"github.com/hanriver/traffic_hazard_system/internal/repository"
	"github.com/hanriver/traffic_hazard_system/internal/seed"
	"github.com/hanriver/traffic_hazard_system/internal/service"
	"github.com/hanriver/traffic_hazard_system/internal/webhook"
	"github.com/hanriver/traffic_hazard_system/pkg/logger"
	"github.com/hanriver/traffic_hazard_system/pkg/postgres"
	redisclient "github.com/hanriver/traffic_hazard_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/hanriver/traffic_hazard_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Traffic Hazard Analysis API
// @version 1.0
// @description Citizen-reporting traffic-hazard analysis API server.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// One-time reference data load, idempotent and gated by SEED_DATA
	if cfg.SeedData {
		if err := seed.New(dbpool, log, cfg).Run(ctx); err != nil {
			log.Fatalf("Failed to seed reference data: %v", err)
		}
	}

	// Webhook publisher and delivery worker
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Repositories
	hotspotRepo := repository.NewHotspotRepository(dbpool, redisClient)
	reportRepo := repository.NewReportRepository(dbpool)
	userRepo := repository.NewUserRepository(dbpool)

	// Services
	analysisService := service.NewAnalysisService(hotspotRepo, log)
	reportService := service.NewReportService(reportRepo, log, webhookPublisher)
	authService := service.NewAuthService(userRepo, log, cfg)

	// Handlers
	handler := v1.NewHandler(analysisService, reportService, authService, log, cfg)

	// Gin router
	metrics := observability.NewMetrics()
	router := gin.Default()
	router.Use(metrics.GinMiddleware())
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
