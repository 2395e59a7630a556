// ba-dashboard/internal/logstore/sheets.go

package logstore

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"

	"ba-dashboard/models"
)

// Header row of the shared log worksheet. Column order is fixed; the sheet
// predates this service and other tools read it.
var sheetHeader = []interface{}{"login_time", "username", "status"}

const sheetsCallTimeout = 10 * time.Second

// SheetsStore keeps the access log in a Google Sheets worksheet. The Sheets
// values API only offers whole-range reads and overwrites, which is exactly
// the Store contract.
type SheetsStore struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSheetsStore(service *sheets.Service, spreadsheetID, sheetName string) *SheetsStore {
	return &SheetsStore{service: service, spreadsheetID: spreadsheetID, sheetName: sheetName}
}

func (s *SheetsStore) ReadAll(ctx context.Context) ([]models.AccessLogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, sheetsCallTimeout)
	defer cancel()

	rng := fmt.Sprintf("%s!A:C", s.sheetName)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets read failed: %w", err)
	}

	var entries []models.AccessLogEntry
	for i, row := range resp.Values {
		if i == 0 {
			// First row is the header.
			continue
		}
		entries = append(entries, models.AccessLogEntry{
			LoginTime: cellString(row, 0),
			Username:  cellString(row, 1),
			Status:    models.AccessStatus(cellString(row, 2)),
		})
	}
	return entries, nil
}

func (s *SheetsStore) WriteAll(ctx context.Context, entries []models.AccessLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, sheetsCallTimeout)
	defer cancel()

	rng := fmt.Sprintf("%s!A:C", s.sheetName)
	if _, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets clear failed: %w", err)
	}

	values := make([][]interface{}, 0, len(entries)+1)
	values = append(values, sheetHeader)
	for _, e := range entries {
		values = append(values, []interface{}{e.LoginTime, e.Username, string(e.Status)})
	}

	vr := &sheets.ValueRange{Values: values}
	_, err := s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, fmt.Sprintf("%s!A1", s.sheetName), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets write failed: %w", err)
	}
	return nil
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return s
}
