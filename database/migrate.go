package database

import (
	"fmt"

	"ycsmatch_backend/internal/config"
	"ycsmatch_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens the shared GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates the schema and installs the case-insensitive unique
// index on users.email, which AutoMigrate alone cannot express.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.NotificationSetting{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	err = db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))",
	).Error
	if err != nil {
		return fmt.Errorf("failed to create lower(email) index: %w", err)
	}

	return nil
}
