// ba-dashboard/internal/report/statements.go

package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrStatementNotFound marks a statement PDF that is not on disk. Reported to
// the user as a warning, never fatal.
var ErrStatementNotFound = errors.New("statement file not found")

// StatementKind is one of the two fixed annual statement reports. Label is
// the Korean name used in the PDF file names.
type StatementKind struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

var StatementKinds = []StatementKind{
	{Slug: "income-statement", Label: "순익계산서"},
	{Slug: "balance-sheet", Label: "재무상태표"},
}

// StatementYears is the fixed set of years with published statements.
var StatementYears = []int{2022, 2023, 2024}

// Statements resolves statement downloads against the PDF directory. Files
// are named {label}_{year}.pdf.
type Statements struct {
	dir string
}

func NewStatements(dir string) *Statements {
	return &Statements{dir: dir}
}

// Find returns the on-disk path and download file name for one statement.
func (s *Statements) Find(kindSlug string, year int) (path, filename string, err error) {
	kind, ok := kindBySlug(kindSlug)
	if !ok {
		return "", "", fmt.Errorf("unknown statement kind %q", kindSlug)
	}
	if !yearPublished(year) {
		return "", "", fmt.Errorf("no statements published for %d", year)
	}

	filename = fmt.Sprintf("%s_%d.pdf", kind.Label, year)
	path = filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", "", fmt.Errorf("%w: %s", ErrStatementNotFound, filename)
	}
	return path, filename, nil
}

// StatementInfo is one catalog entry, with availability of the file on disk.
type StatementInfo struct {
	Kind      StatementKind `json:"kind"`
	Year      int           `json:"year"`
	FileName  string        `json:"fileName"`
	Available bool          `json:"available"`
}

// Catalog lists every kind × year combination for the statement picker.
func (s *Statements) Catalog() []StatementInfo {
	var out []StatementInfo
	for _, kind := range StatementKinds {
		for _, year := range StatementYears {
			filename := fmt.Sprintf("%s_%d.pdf", kind.Label, year)
			_, err := os.Stat(filepath.Join(s.dir, filename))
			out = append(out, StatementInfo{
				Kind:      kind,
				Year:      year,
				FileName:  filename,
				Available: err == nil,
			})
		}
	}
	return out
}

func kindBySlug(slug string) (StatementKind, bool) {
	for _, k := range StatementKinds {
		if k.Slug == slug {
			return k, true
		}
	}
	return StatementKind{}, false
}

func yearPublished(year int) bool {
	for _, y := range StatementYears {
		if y == year {
			return true
		}
	}
	return false
}
