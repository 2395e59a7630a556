// ba-dashboard/internal/logstore/gorm.go

package logstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"ba-dashboard/models"
)

// GormStore keeps the access log in Postgres. Unlike the spreadsheet it has a
// real insert, so it implements Appender and writers cannot lose each other's
// entries.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	var rows []models.AccessLogRow
	if err := s.db.WithContext(ctx).Order("id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("access log query failed: %w", err)
	}
	entries := make([]models.AccessLogEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.Entry())
	}
	return entries, nil
}

// WriteAll replaces the whole table inside a transaction. Only kept to
// satisfy the Store contract; the logger prefers Append.
func (s *GormStore) WriteAll(ctx context.Context, entries []models.AccessLogEntry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.AccessLogRow{}).Error; err != nil {
			return fmt.Errorf("could not clear access log: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}
		// Entries arrive newest-first; insert in reverse so ascending ids
		// preserve chronological order for ReadAll's "id desc".
		rows := make([]models.AccessLogRow, 0, len(entries))
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			rows = append(rows, models.AccessLogRow{LoginTime: e.LoginTime, Username: e.Username, Status: e.Status})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("could not rewrite access log: %w", err)
		}
		return nil
	})
}

func (s *GormStore) Append(ctx context.Context, entry models.AccessLogEntry) error {
	row := models.AccessLogRow{LoginTime: entry.LoginTime, Username: entry.Username, Status: entry.Status}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("could not append access log entry: %w", err)
	}
	return nil
}
