package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-cv-review-backend/config"
	_ "go-cv-review-backend/docs" // Important for Swagger
	v1 "go-cv-review-backend/internal/delivery/http/v1"
	"go-cv-review-backend/internal/repository/postgres"
	"go-cv-review-backend/internal/usecase"
	"go-cv-review-backend/pkg/database"
	"go-cv-review-backend/pkg/filestore"
	"go-cv-review-backend/pkg/logger"
	"go-cv-review-backend/pkg/redis"
)

// @title           CV Review Dashboard API
// @version         1.0
// @description     Read-only review dashboard over parsed candidate CVs.
// @BasePath        /v1
// @securityDefinitions.basic BasicAuth
func main() {
	// 1. Load Config (missing store URL or gate credentials is fatal)
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting cv review backend", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to records store", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting only)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup File Store (optional; without it only absolute CV URLs resolve)
	var signer filestore.Signer
	if cfg.S3AccessKeyID != "" && cfg.CVBucket != "" {
		s3Client, err := filestore.NewS3Client(ctx, filestore.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to create file store client", "error", err)
			os.Exit(1)
		}
		signer = filestore.NewS3Signer(s3Client)
	} else {
		logger.Log.Warn("File store not configured - storage-path CV links will not resolve")
	}
	resolver := filestore.NewResolver(signer, cfg.CVBucket, time.Duration(cfg.SignedURLTTL)*time.Second)

	// 6. Classifier rules (data-driven, optional JSON overrides)
	validate := validator.New()
	rules, err := usecase.LoadRuleSet(cfg.RulesPath, validate)
	if err != nil {
		logger.Log.Error("Failed to load classifier rules", "error", err)
		os.Exit(1)
	}

	// 7. Setup Repositories and UseCases
	recordRepo := postgres.NewRecordRepository(dbPool, cfg.RecordsTable)
	classifier := usecase.NewClassifier(rules)
	reviewUC := usecase.NewReviewUsecase(recordRepo, classifier, cfg.PageSize)
	cvUC := usecase.NewCVLinkUsecase(recordRepo, resolver)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ReviewUC: reviewUC,
		CVUC:     cvUC,
		Config:   cfg,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
