// ba-dashboard/internal/dataset/filter.go

package dataset

// FilterRange returns the rows whose 연월 falls inside [from, to], both ends
// inclusive. Plain string comparison is correct here because the key is
// zero-padded YYYY-MM.
func FilterRange(t *Table, from, to string) *Table {
	out := &Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if row.YearMonth >= from && row.YearMonth <= to {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// WithCumulative replaces the named columns with their running sums over the
// given table. Sums start from zero at the first row, so a filtered sub-range
// never carries totals in from outside its window. Missing cells stay missing
// and leave the running total untouched. The input table is not modified.
func WithCumulative(t *Table, columns []string) *Table {
	out := &Table{Columns: t.Columns, Rows: make([]Row, 0, len(t.Rows))}

	totals := make(map[string]float64, len(columns))
	for _, row := range t.Rows {
		next := row.Clone()
		for _, col := range columns {
			v, ok := next.Values[col]
			if !ok {
				continue
			}
			totals[col] += v
			next.Values[col] = totals[col]
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}
