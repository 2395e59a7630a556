// ba-dashboard/internal/report/report.go

package report

import (
	"errors"

	"ba-dashboard/internal/dataset"
)

// ErrNoData marks a selection that resolves to nothing chartable: an empty
// metric selection or a window with no usable columns. The dashboard shows a
// warning instead of an empty chart.
var ErrNoData = errors.New("no data for the current selection")

// CumulativeMetrics are the metrics the cash-flow report charts as running
// totals. The sums are recomputed inside every filtered window, starting at
// zero (see dataset.WithCumulative).
var CumulativeMetrics = []string{dataset.ColIncome, dataset.ColExpense}

// DefaultCashflowMetrics is the selection used when the caller picks nothing.
var DefaultCashflowMetrics = []string{dataset.ColIncome, dataset.ColExpense}

// SeriesPoint is one long-format chart point: (month, metric, value).
type SeriesPoint struct {
	Month    string  `json:"month"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// WideTable is the tabular companion of a chart: 연월 first, then one column
// per metric; a nil cell is a missing value.
type WideTable struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// Result is what a derived report renders: the chart series plus the table.
type Result struct {
	Series []SeriesPoint `json:"series"`
	Table  WideTable     `json:"table"`
}

// Enrollment builds the enrollment-flow report over [from, to]: counts of the
// four cohort categories plus 총원생, missing counts excluded from the series.
func Enrollment(t *dataset.Table, from, to string) (*Result, error) {
	var columns []string
	for _, cat := range dataset.EnrollmentCategories {
		if t.HasColumn(cat) {
			columns = append(columns, cat)
		}
	}
	if t.HasColumn(dataset.ColTotalStudents) {
		columns = append(columns, dataset.ColTotalStudents)
	}
	if len(columns) == 0 {
		return nil, ErrNoData
	}

	window := dataset.FilterRange(t, from, to)
	return build(window, columns, true), nil
}

// Cashflow builds the cash-flow report over [from, to] for the requested
// metrics (default 수입/지출). Metrics may name workbook columns or derived
// formulas; unknown names are skipped and an entirely unresolvable selection
// is ErrNoData. The designated cumulative metrics are replaced with their
// in-window running sums.
func Cashflow(t *dataset.Table, from, to string, metrics []string) (*Result, error) {
	if len(metrics) == 0 {
		metrics = DefaultCashflowMetrics
	}

	window := cloneTable(dataset.FilterRange(t, from, to))

	derivedByName := make(map[string]DerivedMetric, len(DefaultDerivedMetrics))
	for _, m := range DefaultDerivedMetrics {
		derivedByName[m.Name] = m
	}

	// First occurrence wins: a repeated selection must not duplicate the
	// column or double-count its running total.
	seen := make(map[string]bool, len(metrics))
	var columns []string
	for _, m := range metrics {
		if seen[m] {
			continue
		}
		seen[m] = true
		switch {
		case window.HasColumn(m):
			columns = append(columns, m)
		default:
			dm, ok := derivedByName[m]
			if !ok {
				continue
			}
			dm.apply(window)
			columns = append(columns, m)
		}
	}
	if len(columns) == 0 {
		return nil, ErrNoData
	}

	var cumulative []string
	for _, c := range CumulativeMetrics {
		for _, sel := range columns {
			if c == sel {
				cumulative = append(cumulative, c)
				break
			}
		}
	}
	window = dataset.WithCumulative(window, cumulative)

	return build(window, columns, false), nil
}

// Metrics lists everything the cash-flow multi-selector can offer: the
// numeric workbook columns (minus the key columns) plus the derived metrics.
func Metrics(t *dataset.Table) []string {
	var out []string
	for _, c := range t.Columns {
		if c == dataset.ColYear || c == dataset.ColMonth {
			continue
		}
		out = append(out, c)
	}
	for _, m := range DefaultDerivedMetrics {
		out = append(out, m.Name)
	}
	return out
}

// build emits the shared series + table contract over the selected columns.
// asInt renders table cells as integers (enrollment counts).
func build(window *dataset.Table, columns []string, asInt bool) *Result {
	res := &Result{
		Series: []SeriesPoint{},
		Table:  WideTable{Columns: append([]string{dataset.ColYearMonth}, columns...)},
	}

	for _, row := range window.Rows {
		cells := make([]interface{}, 0, len(columns)+1)
		cells = append(cells, row.YearMonth)
		for _, col := range columns {
			v, ok := row.Value(col)
			if !ok {
				cells = append(cells, nil)
				continue
			}
			if asInt {
				cells = append(cells, int(v))
			} else {
				cells = append(cells, v)
			}
			res.Series = append(res.Series, SeriesPoint{Month: row.YearMonth, Category: col, Value: v})
		}
		res.Table.Rows = append(res.Table.Rows, cells)
	}
	return res
}

func cloneTable(t *dataset.Table) *dataset.Table {
	out := &dataset.Table{Columns: append([]string{}, t.Columns...)}
	for _, row := range t.Rows {
		out.Rows = append(out.Rows, row.Clone())
	}
	return out
}
