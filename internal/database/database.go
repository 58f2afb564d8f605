package database

import (
	"fmt"

	"trivia-backend/internal/config"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/models"

	sloggorm "github.com/orandin/slog-gorm"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := Open(dialector, log)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	log.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// Open wraps gorm.Open so SQL logging goes through the service logger.
func Open(dialector gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: sloggorm.New(sloggorm.WithHandler(logger.Slog(log))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}
