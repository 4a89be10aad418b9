// Package infra provides the Postgres connection and schema migration.
package infra

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/splitmoney/splitmoney/infra/repository/event"
	"github.com/splitmoney/splitmoney/infra/repository/report"
	"github.com/splitmoney/splitmoney/infra/repository/role"
	"github.com/splitmoney/splitmoney/infra/repository/transaction"
	"github.com/splitmoney/splitmoney/infra/repository/user"
	"github.com/splitmoney/splitmoney/pkg/config"
)

// NewDBConnection opens the Postgres connection with pooling configured.
func NewDBConnection(cfg *config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return conn, nil
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&role.Role{},
		&role.UserRole{},
		&event.Event{},
		&transaction.Transaction{},
		&report.ExportJob{},
	)
}
