// ba-dashboard/internal/report/derived.go

package report

import (
	"fmt"
	"log/slog"

	"github.com/Knetic/govaluate"

	"ba-dashboard/internal/dataset"
)

// DerivedMetric is a metric computed per row from other columns instead of
// being read from the workbook. Formulas use the Korean column names as
// variables.
type DerivedMetric struct {
	Name    string
	Formula string

	expr *govaluate.EvaluableExpression
}

// DefaultDerivedMetrics ships with the one metric the finance team asked for.
var DefaultDerivedMetrics = mustDerived([]DerivedMetric{
	{Name: "순이익", Formula: "수입 - 지출"},
})

func mustDerived(metrics []DerivedMetric) []DerivedMetric {
	out := make([]DerivedMetric, 0, len(metrics))
	for _, m := range metrics {
		expr, err := govaluate.NewEvaluableExpression(m.Formula)
		if err != nil {
			panic(fmt.Sprintf("bad built-in formula %q: %v", m.Formula, err))
		}
		m.expr = expr
		out = append(out, m)
	}
	return out
}

// NewDerivedMetric compiles a formula-backed metric.
func NewDerivedMetric(name, formula string) (DerivedMetric, error) {
	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return DerivedMetric{}, fmt.Errorf("bad formula %q: %w", formula, err)
	}
	return DerivedMetric{Name: name, Formula: formula, expr: expr}, nil
}

// apply adds the metric as a column on every row where the formula resolves.
// A row missing any referenced column yields a missing value for that row.
func (m DerivedMetric) apply(t *dataset.Table) {
	vars := m.expr.Vars()

rows:
	for i := range t.Rows {
		params := make(map[string]interface{}, len(vars))
		for _, v := range vars {
			val, ok := t.Rows[i].Values[v]
			if !ok {
				continue rows
			}
			params[v] = val
		}

		result, err := m.expr.Evaluate(params)
		if err != nil {
			slog.Warn("Derived metric evaluation failed", "metric", m.Name, "error", err)
			continue
		}
		if v, ok := result.(float64); ok {
			t.Rows[i].Values[m.Name] = v
		}
	}

	t.Columns = append(t.Columns, m.Name)
}
