package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_MissingRequiredColumns(t *testing.T) {
	t.Parallel()

	_, err := Clean(RawSheet{Name: "비용", Columns: []string{"수입", "지출"}})
	require.ErrorIs(t, err, ErrMissingColumns)

	_, err = Clean(RawSheet{Name: "비용", Columns: []string{ColYear, "수입"}})
	require.ErrorIs(t, err, ErrMissingColumns, "월 column is required")
}

func TestClean_NumericCoercion(t *testing.T) {
	t.Parallel()

	raw := RawSheet{
		Name:    "비용",
		Columns: []string{ColYear, ColMonth, "수입"},
		Cells: [][]string{
			{"2023", "1", "1,234"},
			{"2023", "2", " 500 "},
			{"2023", "3", "abc"},
		},
	}

	table, err := Clean(raw)
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	v, ok := table.Rows[0].Value("수입")
	assert.True(t, ok)
	assert.Equal(t, 1234.0, v, "thousands separators must be stripped")

	v, ok = table.Rows[1].Value("수입")
	assert.True(t, ok)
	assert.Equal(t, 500.0, v, "surrounding whitespace must be tolerated")

	_, ok = table.Rows[2].Value("수입")
	assert.False(t, ok, "unparseable text must become a missing value, not an error")
}

func TestClean_DropsRowsWithoutYearOrMonth(t *testing.T) {
	t.Parallel()

	raw := RawSheet{
		Name:    "비용",
		Columns: []string{ColYear, ColMonth, "수입"},
		Cells: [][]string{
			{"2024", "1", "10"},
			{"", "2", "20"},
			{"2024", "", "30"},
			{"2024", "4", "40"},
		},
	}

	table, err := Clean(raw)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2, "rows missing year or month must be dropped")
	assert.Equal(t, "2024-01", table.Rows[0].YearMonth)
	assert.Equal(t, "2024-04", table.Rows[1].YearMonth)
}

func TestClean_YearMonthIsZeroPadded(t *testing.T) {
	t.Parallel()

	raw := RawSheet{
		Name:    "비용",
		Columns: []string{ColYear, ColMonth},
		Cells:   [][]string{{"2023", "9"}},
	}

	table, err := Clean(raw)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2023-09", table.Rows[0].YearMonth)
}

func TestClean_TotalStudentsNeedsAllFourCategories(t *testing.T) {
	t.Parallel()

	full := RawSheet{
		Name:    "원생",
		Columns: []string{ColYear, ColMonth, "유치부", "초등부", "중등부", "고등부"},
		Cells: [][]string{
			{"2024", "1", "10", "20", "30", "40"},
			{"2024", "2", "11", "", "31", "41"},
		},
	}

	table, err := Clean(full)
	require.NoError(t, err)
	require.True(t, table.HasColumn(ColTotalStudents))

	total, ok := table.Rows[0].Value(ColTotalStudents)
	require.True(t, ok)
	assert.Equal(t, 100.0, total)

	// Missing counts read as zero before summing.
	total, ok = table.Rows[1].Value(ColTotalStudents)
	require.True(t, ok)
	assert.Equal(t, 83.0, total)

	partial := RawSheet{
		Name:    "원생",
		Columns: []string{ColYear, ColMonth, "유치부", "초등부", "중등부"},
		Cells:   [][]string{{"2024", "1", "10", "20", "30"}},
	}
	table, err = Clean(partial)
	require.NoError(t, err)
	assert.False(t, table.HasColumn(ColTotalStudents),
		"총원생 must be absent entirely when any category column is missing")
	_, ok = table.Rows[0].Value(ColTotalStudents)
	assert.False(t, ok)
}

func TestClean_EnrollmentCountsTruncatedToIntegers(t *testing.T) {
	t.Parallel()

	raw := RawSheet{
		Name:    "원생",
		Columns: []string{ColYear, ColMonth, "유치부", "초등부", "중등부", "고등부"},
		Cells:   [][]string{{"2024", "1", "10.7", "20.2", "30", "40"}},
	}

	table, err := Clean(raw)
	require.NoError(t, err)

	v, _ := table.Rows[0].Value("유치부")
	assert.Equal(t, 10.0, v)
	v, _ = table.Rows[0].Value("초등부")
	assert.Equal(t, 20.0, v)
	total, _ := table.Rows[0].Value(ColTotalStudents)
	assert.Equal(t, 100.0, total)
}

// End-to-end scenario over a small sheet: dirty count survives cleaning, the
// keyless row does not.
func TestClean_EndToEnd(t *testing.T) {
	t.Parallel()

	raw := RawSheet{
		Name:    "원생",
		Columns: []string{ColYear, ColMonth, "유치부"},
		Cells: [][]string{
			{"2024", "1", " 10"},
			{"2024", "2", "20"},
			{"2024", "", "5"},
		},
	}

	table, err := Clean(raw)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	a, _ := table.Rows[0].Value("유치부")
	b, _ := table.Rows[1].Value("유치부")
	assert.Equal(t, []float64{10, 20}, []float64{a, b})
}
