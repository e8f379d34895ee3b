// @title           Rental Management System API
// @version         1.0
// @description     Property rental management: tenant lifecycle, monthly rent ledger, maintenance tracking
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT

// @host      localhost:4000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sostinewaliaula/rental-management-system/config"
	"github.com/sostinewaliaula/rental-management-system/internal/infrastructure/database"
	"github.com/sostinewaliaula/rental-management-system/models"
	"github.com/sostinewaliaula/rental-management-system/routes"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Missing .env is fine, variables may come from the environment
	if err := godotenv.Load(); err != nil {
		config.Warning("Could not load .env file: %v", err)
	} else {
		config.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	db := pool.GetDB()

	if cfg.DBMigrationMode != "none" {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	config.Info("Server listening on http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models, adding new columns and tables only
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Floor{},
		&models.Unit{},
		&models.Tenant{},
		&models.Payment{},
		&models.MaintenanceRequest{},
	)
	if err != nil {
		return err
	}

	config.Info("Database migration completed")
	return nil
}

// ensureAdminExists seeds the default admin account on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var admin models.User
	err := db.Where("role = ?", models.RoleAdmin).First(&admin).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		config.Error("Failed to look up admin account: %v", err)
		return
	}

	admin = models.User{
		Name:     "Administrator",
		Email:    cfg.DefaultAdminEmail,
		Password: cfg.DefaultAdminPassword, // hashed by the model hook
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		config.Error("Failed to seed admin account: %v", err)
		return
	}
	config.Info("Seeded default admin account %s", cfg.DefaultAdminEmail)
}
