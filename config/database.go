// ba-dashboard/config/database.go

package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ba-dashboard/models"
)

var DB *gorm.DB

// ConnectDB opens the Postgres connection backing the optional append-only
// access-log store (LOG_STORE=postgres). It is only called when that backend
// is selected, so a missing DB_URL is fatal here.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("Critical: DB_URL environment variable is not set.")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Could not connect to the database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.AccessLogRow{}); err != nil {
		slog.Error("Access log migration failed", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Connected to the database.")
}
