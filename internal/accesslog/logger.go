// ba-dashboard/internal/accesslog/logger.go

package accesslog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ba-dashboard/internal/logstore"
	"ba-dashboard/models"
)

const logTimeout = 15 * time.Second

// Logger appends access events to the shared log, newest-first. Logging is
// diagnostic, not authoritative: Log never fails the caller, whatever the
// store does. Under concurrent sessions the read-modify-write cycle can lose
// entries; that is the store's documented contract.
type Logger struct {
	store logstore.Store
	// now is swappable for tests.
	now func() time.Time
}

func NewLogger(store logstore.Store) *Logger {
	return &Logger{store: store, now: time.Now}
}

// Log records one access event. Best-effort: every failure inside is caught,
// logged at Warn and discarded so login and logout flows never break on a
// broken log store.
func (l *Logger) Log(username string, status models.AccessStatus) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("Access logging panicked", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), logTimeout)
	defer cancel()

	entry := models.AccessLogEntry{
		LoginTime: l.now().Format(models.TimeLayout),
		Username:  username,
		Status:    status,
	}

	// Prefer an atomic append when the backend has one.
	if a, ok := l.store.(logstore.Appender); ok {
		err := a.Append(ctx, entry)
		if err == nil {
			return
		}
		if !errors.Is(err, logstore.ErrNoAppend) {
			slog.Warn("Access log append failed", "error", err, "username", username, "status", status)
			return
		}
	}

	// Full-table read-modify-write: fetch, prepend, overwrite. A failed read
	// drops the entry; overwriting the remote table with a partial view would
	// destroy everyone else's rows.
	entries, err := l.store.ReadAll(ctx)
	if err != nil {
		slog.Warn("Access log read failed, entry dropped", "error", err, "username", username, "status", status)
		return
	}

	entries = append([]models.AccessLogEntry{entry}, entries...)
	if err := l.store.WriteAll(ctx, entries); err != nil {
		slog.Warn("Access log write failed, entry dropped", "error", err, "username", username, "status", status)
	}
}
