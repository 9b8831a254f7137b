package main

import (
	"log"

	"airsoft-manager-backend/internal/config"
	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"
	"airsoft-manager-backend/internal/utils"
	"airsoft-manager-backend/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

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

	log.Println("✅ Database migrations completed successfully")

	// Create default admin user if not exists
	if err := createDefaultAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to create default admin: %v", err)
	}

	// Backfill approval status on registrations created before the
	// approval workflow existed
	if err := backfillApprovalStatus(db); err != nil {
		log.Fatalf("Failed to backfill approval status: %v", err)
	}

	log.Println("🎉 Migration process completed!")
}

func createDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	// Check if admin already exists
	var existingAdmin models.User
	if err := db.Where("username = ?", cfg.AdminUsername).First(&existingAdmin).Error; err == nil {
		log.Println("ℹ️  Default admin user already exists")
		return nil
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	// Create admin user
	admin := &models.User{
		Username:       cfg.AdminUsername,
		HashedPassword: hashedPassword,
		IsAdmin:        true,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Default admin user created:")
	log.Printf("   Username: %s", cfg.AdminUsername)
	log.Printf("   Password: %s", cfg.AdminPassword)

	return nil
}

// backfillApprovalStatus marks legacy registrations approved. Rows from
// before the approval workflow were implicitly accepted; new registrations
// always start pending, so only the migration hands out approval for free.
func backfillApprovalStatus(db *gorm.DB) error {
	result := db.Model(&models.Registration{}).
		Where("approval_status IS NULL OR approval_status = ''").
		Update("approval_status", models.ApprovalApproved)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("✅ Backfilled approval status on %d registration(s)", result.RowsAffected)
	}
	return nil
}
