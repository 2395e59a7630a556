package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "비용"
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	rows := [][]interface{}{
		{ColYear, ColMonth, ColIncome},
		{2024, 1, "1,000"},
		{2024, 2, 2000},
		{"", 3, 3000},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}

	path := filepath.Join(t.TempDir(), "figures.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoader_DatasetFromWorkbook(t *testing.T) {
	t.Parallel()

	l := NewLoader(writeWorkbook(t), "")

	table, err := l.Dataset()
	require.NoError(t, err)
	require.Len(t, table.Rows, 2, "row without a year must be dropped")

	v, ok := table.Rows[0].Value(ColIncome)
	require.True(t, ok)
	assert.Equal(t, 1000.0, v)
	assert.Equal(t, "2024-01", table.Rows[0].YearMonth)
}

func TestLoader_ReloadFailureIsReported(t *testing.T) {
	t.Parallel()

	path := writeWorkbook(t)
	l := NewLoader(path, "")

	_, err := l.Dataset()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	// Within the TTL the parsed copy is still served.
	_, err = l.Dataset()
	require.NoError(t, err)

	// Once the TTL lapses the failed re-read must reach the caller instead
	// of silently serving stale figures.
	l.mu.Lock()
	l.loadedAt = time.Now().Add(-2 * ReloadTTL)
	l.mu.Unlock()

	_, err = l.Dataset()
	require.Error(t, err)
}

func TestLoader_MissingFileIsReported(t *testing.T) {
	t.Parallel()

	l := NewLoader(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	_, err := l.Dataset()
	require.Error(t, err)
}

func TestLoader_SheetListing(t *testing.T) {
	t.Parallel()

	l := NewLoader(writeWorkbook(t), "")
	book, err := l.Workbook()
	require.NoError(t, err)
	assert.Equal(t, []string{"비용"}, book.SheetNames)

	raw, ok := l.Sheet("비용")
	require.True(t, ok)
	assert.Equal(t, []string{ColYear, ColMonth, ColIncome}, raw.Columns)
}

func TestLoader_UnknownDataSheet(t *testing.T) {
	t.Parallel()

	l := NewLoader(writeWorkbook(t), "없는시트")
	_, err := l.Dataset()
	require.Error(t, err)
}
