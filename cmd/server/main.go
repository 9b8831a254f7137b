package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"airsoft-manager-backend/internal/config"
	"airsoft-manager-backend/internal/handlers"
	"airsoft-manager-backend/internal/mailer"
	"airsoft-manager-backend/internal/repositories"
	"airsoft-manager-backend/internal/scheduler"
	"airsoft-manager-backend/internal/services"
	"airsoft-manager-backend/pkg/database"
	"airsoft-manager-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Run migrations
	if err := repositories.AutoMigrate(db); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	// Initialize repositories
	repo := repositories.NewRepository(db)

	// Initialize services
	notifier := mailer.New(cfg)
	pricingSvc := services.NewPricingService(repo.SettingsRepo, repo.PartnerRepo)
	authSvc := services.NewAuthService(repo.UserRepo, cfg)
	gameSvc := services.NewGameService(repo.GameRepo)
	regSvc := services.NewRegistrationService(
		repo.GameRepo,
		repo.RegistrationRepo,
		repo.TagRepo,
		repo.PaymentTypeRepo,
		pricingSvc,
		notifier,
		cfg,
	)
	catalogSvc := services.NewCatalogService(repo.PartnerRepo, repo.PaymentTypeRepo, repo.TagRepo, repo.RegistrationRepo)
	settingsSvc := services.NewSettingsService(repo.SettingsRepo)
	rulesSvc := services.NewRulesService(repo.SettingsRepo, repo.RuleVersionRepo)
	membershipSvc := services.NewMembershipService(repo.MembershipRepo)
	statsSvc := services.NewStatsService(repo.GameRepo, repo.RegistrationRepo, pricingSvc)
	reminderSvc := services.NewReminderService(repo.GameRepo, repo.RegistrationRepo, notifier)

	// Seed the admin account so login works before any request
	if _, err := authSvc.GetOrCreateAdmin(); err != nil {
		log.Fatalf("Admin seed error: %v", err)
	}

	// Initialize handlers
	handler := handlers.NewHandler(
		authSvc,
		gameSvc,
		regSvc,
		catalogSvc,
		settingsSvc,
		rulesSvc,
		membershipSvc,
		statsSvc,
		reminderSvc,
		cfg,
	)

	// Daily reminder job
	sched := scheduler.New(func() {
		if err := reminderSvc.SendDueReminders(); err != nil {
			logrus.WithError(err).Error("reminder job failed")
		}
	})
	sched.Start()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Airsoft Manager API",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Create upload directories
	if err := os.MkdirAll(cfg.QRDir, 0755); err != nil {
		log.Fatalf("Failed to create QR directory: %v", err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Static file serving
	app.Static("/qrcodes", cfg.QRDir)
	app.Static("/logos", cfg.UploadDir)

	// Register routes
	api := app.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("🚀 Server starting on %s", addr)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sched.Stop()
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped gracefully")
}
