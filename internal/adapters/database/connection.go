// Package database provides the gorm-backed gateway session store
package database

import (
	"fmt"

	"farmwatch.app/internal/config"
	"farmwatch.app/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("database config cannot be nil", nil)
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, errors.NewStorageError("failed to connect to database", err)
	}
	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&SessionModel{}); err != nil {
		return errors.NewStorageError("failed to migrate session table", err)
	}
	return nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
