// ba-dashboard/internal/handlers/setup.go

package handlers

import (
	"ba-dashboard/internal/accesslog"
	"ba-dashboard/internal/credstore"
	"ba-dashboard/internal/dataset"
	"ba-dashboard/internal/logstore"
	"ba-dashboard/internal/report"
)

// Package-level dependencies, wired once from main. Keeping them here lets
// the handlers stay plain functions.
var (
	Verifier   credstore.Verifier
	AccessLog  *accesslog.Logger
	Data       *dataset.Loader
	Statements *report.Statements
	LogStore   logstore.Store
)

func Setup(verifier credstore.Verifier, logger *accesslog.Logger, loader *dataset.Loader, statements *report.Statements, store logstore.Store) {
	Verifier = verifier
	AccessLog = logger
	Data = loader
	Statements = statements
	LogStore = store
}
