package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "prospace-backend/internal/api/http"
	"prospace-backend/internal/config"
	"prospace-backend/internal/jobs"
	"prospace-backend/internal/logger"
	"prospace-backend/internal/repository/postgres"
	"prospace-backend/internal/scheduler"
	"prospace-backend/internal/security"
	"prospace-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ProSpace Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Apply migrations; the unique indexes they declare are what makes
	// concurrent booking writes safe, so a failure here is fatal.
	if err := postgres.Migrate(cfg.Database.Migrations, cfg.GetDatabaseConnectionString()); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	deskSvc := service.NewDeskService(store.DeskRepository)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.DeskRepository,
		emailSvc,
		cfg.Notifications.AdminEmail,
	)
	reviewSvc := service.NewReviewService(store.ReviewRepository)

	// Start reminder scheduler
	jobRunner := jobs.NewJobRunner(store.BookingRepository, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Serve
	router := api.NewRouter(tokenManager, authSvc, userSvc, deskSvc, bookingSvc, reviewSvc)
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
