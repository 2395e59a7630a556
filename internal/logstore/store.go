// ba-dashboard/internal/logstore/store.go

package logstore

import (
	"context"
	"errors"
	"sync"

	"ba-dashboard/models"
)

// ErrNoAppend is returned by decorators whose backend has no atomic append;
// callers fall back to the read-modify-write cycle.
var ErrNoAppend = errors.New("logstore: backend does not support append")

// Store is the access-log backend. The shared spreadsheet has no append
// primitive, so the contract is read-everything / overwrite-everything;
// every logical append is a full-table read-modify-write. Concurrent writers
// can therefore lose each other's rows (last writer wins on the whole table).
// That hazard is part of the contract, not an implementation bug; backends
// that can do better also implement Appender.
type Store interface {
	// ReadAll returns every entry, newest first.
	ReadAll(ctx context.Context) ([]models.AccessLogEntry, error)
	// WriteAll replaces the whole table (header included) with entries.
	WriteAll(ctx context.Context, entries []models.AccessLogEntry) error
}

// Appender is the optional atomic-append extension. Backends with real row
// inserts (Postgres) expose it so the logger can skip the lossy
// read-modify-write cycle.
type Appender interface {
	Append(ctx context.Context, entry models.AccessLogEntry) error
}

// MemoryStore keeps the log in process memory. Used by tests and as the dev
// fallback when no remote backend is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.AccessLogEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AccessLogEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) WriteAll(ctx context.Context, entries []models.AccessLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]models.AccessLogEntry, len(entries))
	copy(s.entries, entries)
	return nil
}
