package accesslog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ba-dashboard/internal/logstore"
	"ba-dashboard/models"
)

type brokenStore struct{}

func (brokenStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	return nil, errors.New("quota exceeded")
}

func (brokenStore) WriteAll(ctx context.Context, entries []models.AccessLogEntry) error {
	return errors.New("quota exceeded")
}

type panickyStore struct{}

func (panickyStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	panic("boom")
}

func (panickyStore) WriteAll(ctx context.Context, entries []models.AccessLogEntry) error {
	panic("boom")
}

func fixedClock(l *Logger, at time.Time) {
	l.now = func() time.Time { return at }
}

func TestLog_PrependsNewestFirst(t *testing.T) {
	t.Parallel()

	store := logstore.NewMemoryStore()
	l := NewLogger(store)

	fixedClock(l, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	l.Log("test", models.StatusSuccess)

	fixedClock(l, time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC))
	l.Log("test", models.StatusLogout)

	entries, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, models.StatusLogout, entries[0].Status, "newest entry must come first")
	assert.Equal(t, "2026-08-30 09:05:00", entries[0].LoginTime)
	assert.Equal(t, models.StatusSuccess, entries[1].Status)
	assert.Equal(t, "test", entries[1].Username)
}

func TestLog_DuplicatesAllowed(t *testing.T) {
	t.Parallel()

	store := logstore.NewMemoryStore()
	l := NewLogger(store)
	fixedClock(l, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	l.Log("test", models.StatusFailed)
	l.Log("test", models.StatusFailed)

	entries, err := store.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, entries[0], entries[1])
}

func TestLog_NeverFailsOnBrokenStore(t *testing.T) {
	t.Parallel()

	l := NewLogger(brokenStore{})

	assert.NotPanics(t, func() {
		l.Log("test", models.StatusSuccess)
		l.Log("test", models.StatusFailed)
		l.Log("test", models.StatusLogout)
	})
}

func TestLog_NeverFailsOnPanickyStore(t *testing.T) {
	t.Parallel()

	l := NewLogger(panickyStore{})

	assert.NotPanics(t, func() {
		l.Log("test", models.StatusSuccess)
	})
}

func TestLog_UsesAtomicAppendWhenAvailable(t *testing.T) {
	t.Parallel()

	store := &appendOnlyStore{}
	l := NewLogger(store)
	fixedClock(l, time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	l.Log("test", models.StatusSuccess)

	assert.Equal(t, 1, store.appends)
	assert.Equal(t, 0, store.reads, "append path must skip the read-modify-write cycle")
}

type appendOnlyStore struct {
	logstore.MemoryStore
	appends int
	reads   int
}

func (s *appendOnlyStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	s.reads++
	return s.MemoryStore.ReadAll(ctx)
}

func (s *appendOnlyStore) Append(ctx context.Context, entry models.AccessLogEntry) error {
	s.appends++
	return nil
}
