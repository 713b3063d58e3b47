package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-admin-backend/config"
)

// Open connects to the database selected by DB_TYPE. "postgres" builds a DSN
// from the DB_* variables; anything else falls back to a local SQLite file
// (SQLITE_PATH, default portfolio.db), which is the zero-config dev setup.
func Open(c map[string]string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormConfig := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	switch config.GetString(c, "DB_TYPE", "sqlite") {
	case "postgres":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(c, "DB_HOST", "localhost"),
			config.GetString(c, "DB_USER", "postgres"),
			config.GetString(c, "DB_PASSWORD", ""),
			config.GetString(c, "DB_NAME", "portfolio"),
			config.GetString(c, "DB_PORT", "5432"),
			config.GetString(c, "DB_SSLMODE", "require"),
		)
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), gormConfig)
	default:
		path := config.GetString(c, "SQLITE_PATH", "portfolio.db")
		db, err := gorm.Open(sqlite.Open(path), gormConfig)
		if err != nil {
			return nil, err
		}
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
		return db, nil
	}
}
