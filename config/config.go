// ba-dashboard/config/config.go

package config

import (
	"log/slog"
	"os"
)

// Package-level settings, populated once by Load() at startup. Handlers and
// stores read these instead of touching the environment directly.
var (
	Port     string
	JwtKey   []byte
	DataFile string
	// DataSheet is the worksheet holding the monthly figures. Empty means
	// "first sheet in the workbook".
	DataSheet string
	PdfDir    string
	UsersFile string

	// Access-log backend selection: "sheets", "postgres" or "memory".
	LogStore  string
	SheetID   string
	SheetName string
)

func Load() {
	Port = getenv("PORT", "8080")
	DataFile = getenv("DATA_FILE", "비용 정리_250830.xlsx")
	DataSheet = os.Getenv("DATA_SHEET")
	PdfDir = getenv("PDF_DIR", "reports")
	UsersFile = getenv("USERS_FILE", "users.json")
	LogStore = getenv("LOG_STORE", "sheets")
	SheetID = os.Getenv("SHEET_ID")
	SheetName = getenv("SHEET_NAME", "access_log")

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("Critical: JWT_SECRET environment variable is not set.")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
