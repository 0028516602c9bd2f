package database

import (
	"fmt"
	"log/slog"

	"bookreview/internal/config"
	"bookreview/internal/http-api/models"
	"bookreview/internal/middleware/auth"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the postgres connection and migrates the schema. The
// translated errors option lets services detect unique-constraint violations
// via gorm.ErrDuplicatedKey.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Review{},
		&models.Comment{},
		&models.Like{},
		&models.RefreshToken{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

// EnsureAdmin creates the bootstrap admin account when configured and absent.
// This is the only way an admin comes to exist; no API operation elevates roles.
func EnsureAdmin(db *gorm.DB, cfg *config.Config, logger *slog.Logger) error {
	if cfg.AdminUsername == "" || cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Bootstrap admin account created", "username", cfg.AdminUsername)
	return nil
}
