package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"resume-builder-backend/config"
	_ "resume-builder-backend/docs" // Important for Swagger
	v1 "resume-builder-backend/internal/delivery/http/v1"
	"resume-builder-backend/internal/repository/postgres"
	"resume-builder-backend/internal/usecase"
	"resume-builder-backend/migrations"
	"resume-builder-backend/pkg/database"
	"resume-builder-backend/pkg/logger"
	"resume-builder-backend/pkg/validation"
	"syscall"
	"time"
)

// @title           Resume Builder Backend API
// @version         1.0
// @description     Backend for the resume builder using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting resume builder backend", "port", cfg.Port)

	// 3. Run Migrations
	if err := database.RunMigrations(cfg.DBUrl, migrations.FS); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Repositories
	resumeRepo := postgres.NewResumeRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	masterDataRepo := postgres.NewMasterDataRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)
	schemaRepo := postgres.NewSchemaRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	resumeUC := usecase.NewResumeUsecase(resumeRepo, validate, cfg.UploadDir)
	authUC := usecase.NewAuthUsecase(userRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	masterDataUC := usecase.NewMasterDataUsecase(masterDataRepo, validate)
	analyticsUC := usecase.NewAnalyticsUsecase(analyticsRepo)
	systemUC := usecase.NewSystemUsecase(schemaRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC:        resumeUC,
		AuthUC:          authUC,
		JobUC:           jobUC,
		MasterDataUC:    masterDataUC,
		AnalyticsUC:     analyticsUC,
		SystemUC:        systemUC,
		MasterResources: postgres.MasterResources(),
	})

	// 8. Start Server
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
