// ba-dashboard/internal/logstore/cache.go

package logstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ba-dashboard/models"
)

// DefaultTTL bounds how stale a cached read of the log may be within one
// process. Cross-process staleness is inherent to the shared spreadsheet and
// accepted.
const DefaultTTL = time.Minute

// CachedStore decorates a Store with a short-TTL read cache. A successful
// WriteAll updates the cache synchronously, so the next ReadAll in this
// process always reflects the write. When the backend read fails and a cached
// copy exists, the stale copy is served instead of the error.
type CachedStore struct {
	inner Store
	ttl   time.Duration

	mu        sync.Mutex
	entries   []models.AccessLogEntry
	fetchedAt time.Time
	primed    bool
}

func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedStore{inner: inner, ttl: ttl}
}

func (c *CachedStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	c.mu.Lock()
	if c.primed && time.Since(c.fetchedAt) < c.ttl {
		out := snapshot(c.entries)
		c.mu.Unlock()
		return out, nil
	}
	c.mu.Unlock()

	entries, err := c.inner.ReadAll(ctx)
	if err != nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.primed {
			slog.Warn("Access log read failed, serving cached copy", "error", err)
			return snapshot(c.entries), nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.entries = snapshot(entries)
	c.fetchedAt = time.Now()
	c.primed = true
	c.mu.Unlock()
	return entries, nil
}

func (c *CachedStore) WriteAll(ctx context.Context, entries []models.AccessLogEntry) error {
	if err := c.inner.WriteAll(ctx, entries); err != nil {
		return err
	}
	c.mu.Lock()
	c.entries = snapshot(entries)
	c.fetchedAt = time.Now()
	c.primed = true
	c.mu.Unlock()
	return nil
}

// Append passes through to the backend when it supports atomic appends and
// invalidates the cache so the next read refetches.
func (c *CachedStore) Append(ctx context.Context, entry models.AccessLogEntry) error {
	a, ok := c.inner.(Appender)
	if !ok {
		return ErrNoAppend
	}
	if err := a.Append(ctx, entry); err != nil {
		return err
	}
	c.mu.Lock()
	c.primed = false
	c.mu.Unlock()
	return nil
}

func snapshot(entries []models.AccessLogEntry) []models.AccessLogEntry {
	out := make([]models.AccessLogEntry, len(entries))
	copy(out, entries)
	return out
}
