// ba-dashboard/internal/dataset/table.go

package dataset

// Column names of the monthly figures workbook. The workbook is maintained by
// hand in Korean; these names are part of its format.
const (
	ColYear      = "연도"
	ColMonth     = "월"
	ColYearMonth = "연월"
	// ColTotalStudents is derived, the row-wise sum of the four enrollment
	// categories.
	ColTotalStudents = "총원생"

	ColIncome  = "수입"
	ColExpense = "지출"
)

// EnrollmentCategories are the four cohort labels that partition the student
// counts. ColTotalStudents is only derived when all four are present.
var EnrollmentCategories = []string{"유치부", "초등부", "중등부", "고등부"}

// Row is one cleaned (year, month) row. A metric absent from Values is a
// missing value, not a zero.
type Row struct {
	YearMonth string             `json:"yearMonth"`
	Values    map[string]float64 `json:"values"`
}

// Table is a cleaned dataset: column order as it appears in the workbook plus
// any derived columns, and one row per surviving source row.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Value returns the cell for (row, column) and whether it is present.
func (r Row) Value(column string) (float64, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Clone deep-copies the row so per-filter transforms never touch the cached
// dataset.
func (r Row) Clone() Row {
	values := make(map[string]float64, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Row{YearMonth: r.YearMonth, Values: values}
}

// RawSheet is one worksheet as read from the workbook, header row split off,
// every cell still a string.
type RawSheet struct {
	Name    string
	Columns []string
	Cells   [][]string
}
