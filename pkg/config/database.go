package config

import (
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/samwong-dev/family-ledger/backend/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection
type DB struct {
	Conn *gorm.DB
}

// InitDB initializes and returns the database connection. A postgres:// URL
// selects PostgreSQL; anything else is treated as a sqlite file path for
// local development.
func InitDB() (*DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, assuming environment variables are set")
	}

	cfg := Load()

	var dialector gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres://") || strings.HasPrefix(cfg.DatabaseURL, "postgresql://") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	logger.Log.WithField("database", dialector.Name()).Info("Successfully connected to database")
	return &DB{Conn: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() {
	if db.Conn == nil {
		return
	}
	sqlDB, err := db.Conn.DB()
	if err != nil {
		logger.Log.WithError(err).Error("Error getting SQL DB from GORM")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Log.WithError(err).Error("Error closing database connection")
	} else {
		logger.Log.Info("Database connection closed")
	}
}
