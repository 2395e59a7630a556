// ba-dashboard/main.go

package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"ba-dashboard/config"
	"ba-dashboard/internal/accesslog"
	"ba-dashboard/internal/credstore"
	"ba-dashboard/internal/dataset"
	"ba-dashboard/internal/handlers"
	"ba-dashboard/internal/logstore"
	"ba-dashboard/internal/report"
	"ba-dashboard/internal/routes"
)

func main() {
	setupLogging()
	config.Load()
	config.ConnectRedis()

	verifier, err := credstore.LoadRoster(config.UsersFile)
	if err != nil {
		slog.Error("Could not load the user roster", "error", err)
		os.Exit(1)
	}

	store := buildLogStore()
	logger := accesslog.NewLogger(store)

	loader := dataset.NewLoader(config.DataFile, config.DataSheet)
	statements := report.NewStatements(config.PdfDir)

	handlers.Setup(verifier, logger, loader, statements, store)

	r := gin.Default()
	routes.SetupRoutes(r)

	slog.Info("Starting dashboard", "port", config.Port, "logStore", config.LogStore)
	if err := r.Run(":" + config.Port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// buildLogStore picks the access-log backend and wraps it in the short-TTL
// read cache. A misconfigured sheets backend degrades to the in-memory store
// so a broken log never blocks logins.
func buildLogStore() logstore.Store {
	var inner logstore.Store
	switch config.LogStore {
	case "postgres":
		config.ConnectDB()
		inner = logstore.NewGormStore(config.DB)
	case "memory":
		inner = logstore.NewMemoryStore()
	default:
		if err := config.InitGoogleServices(); err != nil || config.SheetID == "" {
			slog.Warn("Sheets log store unavailable, falling back to in-memory log", "error", err)
			inner = logstore.NewMemoryStore()
			break
		}
		inner = logstore.NewSheetsStore(config.Sheets, config.SheetID, config.SheetName)
	}
	return logstore.NewCachedStore(inner, logstore.DefaultTTL)
}

func setupLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
