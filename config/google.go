// ba-dashboard/config/google.go

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var (
	Sheets *sheets.Service
)

// InitGoogleServices initializes the Google Sheets client used by the
// access-log store. Only called when LOG_STORE=sheets.
func InitGoogleServices() error {
	ctx := context.Background()

	credFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credFile == "" {
		return fmt.Errorf("GOOGLE_CREDENTIALS_FILE environment variable not set")
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("unable to create Sheets client: %v", err)
	}
	Sheets = srv
	slog.Info("Google Sheets client initialized successfully.")

	return nil
}
