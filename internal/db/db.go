package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ZenNoodz/Motioncookingcontent/internal/app/board"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/content"
	"github.com/ZenNoodz/Motioncookingcontent/internal/app/project"
	"github.com/ZenNoodz/Motioncookingcontent/internal/config"
)

// Connect opens the configured database. Postgres is the canonical
// store; sqlite serves local development and the test suite.
func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	switch cfg.DBDriver {
	case "sqlite":
		conn, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to SQLite", zap.String("path", cfg.SQLitePath))
	case "postgres":
		conn, err = gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, err
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, err
		}

		logger.Info("Connected to PostgreSQL",
			zap.String("host", cfg.DBHost),
			zap.String("database", cfg.DBName),
		)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	return conn, nil
}

func Migrate(conn *gorm.DB, logger *zap.Logger) error {
	if err := conn.AutoMigrate(
		&project.Project{},
		&board.Column{},
		&board.Card{},
		&content.Item{},
		&content.CaptionDraft{},
		&content.Link{},
	); err != nil {
		return err
	}
	logger.Info("Database migrated")
	return nil
}
