// ba-dashboard/internal/dataset/clean.go

package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingColumns marks a worksheet without the 연도/월 key columns. The
// dashboard reports it as a data problem rather than a server fault.
var ErrMissingColumns = errors.New("required year/month columns are missing")

// Clean turns a raw worksheet into the dashboard dataset. The steps and their
// order are a hard contract:
//
//  1. error if the 연도 or 월 column is missing;
//  2. rows without a usable year or month are dropped;
//  3. every cell is coerced to a number, commas and surrounding whitespace
//     stripped first; what still fails to parse becomes a missing value;
//  4. 연월 is built as zero-padded YYYY-MM from the truncated year and month;
//  5. enrollment categories are truncated to integers, missing counts as 0;
//  6. iff all four categories are present, 총원생 is their row-wise sum.
//
// Given the same worksheet bytes the output is identical.
func Clean(raw RawSheet) (*Table, error) {
	yearIdx, monthIdx := -1, -1
	for i, c := range raw.Columns {
		switch c {
		case ColYear:
			yearIdx = i
		case ColMonth:
			monthIdx = i
		}
	}
	if yearIdx < 0 || monthIdx < 0 {
		return nil, fmt.Errorf("sheet %q: %w", raw.Name, ErrMissingColumns)
	}

	columns := make([]string, len(raw.Columns))
	copy(columns, raw.Columns)

	hasAllCategories := true
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	for _, cat := range EnrollmentCategories {
		if !present[cat] {
			hasAllCategories = false
		}
	}

	table := &Table{Columns: columns}
	for _, cells := range raw.Cells {
		year, yearOK := parseNumber(cell(cells, yearIdx))
		month, monthOK := parseNumber(cell(cells, monthIdx))
		if !yearOK || !monthOK {
			// No (year, month) key means no place on the timeline.
			continue
		}

		row := Row{
			YearMonth: fmt.Sprintf("%04d-%02d", int(math.Trunc(year)), int(math.Trunc(month))),
			Values:    make(map[string]float64, len(columns)),
		}
		for i, name := range columns {
			if v, ok := parseNumber(cell(cells, i)); ok {
				row.Values[name] = v
			}
		}

		for _, cat := range EnrollmentCategories {
			if !present[cat] {
				continue
			}
			v := row.Values[cat] // missing reads as 0 on purpose
			row.Values[cat] = math.Trunc(v)
		}
		if hasAllCategories {
			var total float64
			for _, cat := range EnrollmentCategories {
				total += row.Values[cat]
			}
			row.Values[ColTotalStudents] = total
		}

		table.Rows = append(table.Rows, row)
	}

	if hasAllCategories {
		table.Columns = append(table.Columns, ColTotalStudents)
	}
	return table, nil
}

// parseNumber coerces one cell. Thousands separators and surrounding
// whitespace are tolerated; anything else that does not parse is a missing
// value, never an error.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cell(cells []string, i int) string {
	if i < 0 || i >= len(cells) {
		return ""
	}
	return cells[i]
}
