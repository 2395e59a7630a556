// ba-dashboard/internal/dataset/loader.go

package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"

	"ba-dashboard/config"
)

// ReloadTTL bounds how long a parsed workbook is reused before the file is
// read again. The workbook is maintained by hand, hourly freshness is plenty.
const ReloadTTL = time.Hour

// Workbook is the parsed Excel file: sheet order as authored plus the raw
// cells of every sheet.
type Workbook struct {
	SheetNames []string
	Sheets     map[string]RawSheet
}

// Loader reads the monthly figures workbook and serves the cleaned dataset.
// The parsed workbook is cached in-process for ReloadTTL; with Redis
// configured the cleaned table is additionally shared across processes.
type Loader struct {
	path  string
	sheet string

	mu       sync.Mutex
	book     *Workbook
	loadedAt time.Time
}

// NewLoader serves data from the given workbook path. dataSheet selects the
// worksheet holding the monthly figures; empty means the first sheet.
func NewLoader(path, dataSheet string) *Loader {
	return &Loader{path: path, sheet: dataSheet}
}

// Workbook returns the parsed workbook, re-reading the file after ReloadTTL.
// A failed re-read is reported to the caller: the users must learn that the
// figures stopped refreshing rather than read hours-stale numbers.
func (l *Loader) Workbook() (*Workbook, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.book != nil && time.Since(l.loadedAt) < ReloadTTL {
		return l.book, nil
	}

	book, err := readWorkbook(l.path)
	if err != nil {
		l.book = nil
		return nil, err
	}

	l.book = book
	l.loadedAt = time.Now()
	return book, nil
}

// Dataset returns the cleaned dataset of the data sheet. A missing or
// unreadable workbook and missing 연도/월 columns are reported errors, never
// swallowed.
func (l *Loader) Dataset() (*Table, error) {
	cacheKey := fmt.Sprintf("dataset:%s", l.dataSheetName())
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, cacheKey).Result()
		if err == nil {
			var table Table
			if json.Unmarshal([]byte(cached), &table) == nil {
				return &table, nil
			}
			slog.Warn("Failed to unmarshal cached dataset", "key", cacheKey)
		} else if err != redis.Nil {
			slog.Error("Redis GET command failed", "error", err, "key", cacheKey)
		}
	}

	book, err := l.Workbook()
	if err != nil {
		return nil, err
	}
	raw, ok := l.pickDataSheet(book)
	if !ok {
		return nil, fmt.Errorf("data sheet %q not found in %s", l.sheet, l.path)
	}

	table, err := Clean(raw)
	if err != nil {
		return nil, err
	}

	if config.RDB != nil {
		jsonData, err := json.Marshal(table)
		if err != nil {
			slog.Error("Failed to marshal dataset for caching", "error", err)
		} else if err := config.RDB.Set(config.Ctx, cacheKey, jsonData, ReloadTTL).Err(); err != nil {
			slog.Error("Failed to SET dataset to cache", "error", err)
		}
	}
	return table, nil
}

// Sheet returns the raw cells of one worksheet, for the dashboard's plain
// sheet view.
func (l *Loader) Sheet(name string) (RawSheet, bool) {
	book, err := l.Workbook()
	if err != nil {
		return RawSheet{}, false
	}
	raw, ok := book.Sheets[name]
	return raw, ok
}

func (l *Loader) dataSheetName() string {
	if l.sheet != "" {
		return l.sheet
	}
	return "_first"
}

func (l *Loader) pickDataSheet(book *Workbook) (RawSheet, bool) {
	if l.sheet != "" {
		raw, ok := book.Sheets[l.sheet]
		return raw, ok
	}
	if len(book.SheetNames) == 0 {
		return RawSheet{}, false
	}
	raw, ok := book.Sheets[book.SheetNames[0]]
	return raw, ok
}

func readWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook %s: %w", path, err)
	}
	defer f.Close()

	book := &Workbook{Sheets: make(map[string]RawSheet)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("could not read sheet %q: %w", name, err)
		}

		raw := RawSheet{Name: name}
		if len(rows) > 0 {
			raw.Columns = rows[0]
			raw.Cells = rows[1:]
		}
		book.SheetNames = append(book.SheetNames, name)
		book.Sheets[name] = raw
	}
	return book, nil
}
