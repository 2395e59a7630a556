package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statementDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o600))
	}
	return dir
}

func TestStatements_Find(t *testing.T) {
	t.Parallel()

	s := NewStatements(statementDir(t, "순익계산서_2023.pdf"))

	path, filename, err := s.Find("income-statement", 2023)
	require.NoError(t, err)
	assert.Equal(t, "순익계산서_2023.pdf", filename)
	assert.FileExists(t, path)
}

func TestStatements_MissingFileIsWarning(t *testing.T) {
	t.Parallel()

	s := NewStatements(statementDir(t))
	_, _, err := s.Find("balance-sheet", 2024)
	assert.ErrorIs(t, err, ErrStatementNotFound)
}

func TestStatements_UnknownKindAndYear(t *testing.T) {
	t.Parallel()

	s := NewStatements(statementDir(t, "순익계산서_2023.pdf"))

	_, _, err := s.Find("cash-ledger", 2023)
	assert.Error(t, err)

	_, _, err = s.Find("income-statement", 2021)
	assert.Error(t, err)
}

func TestStatements_Catalog(t *testing.T) {
	t.Parallel()

	s := NewStatements(statementDir(t, "재무상태표_2022.pdf"))
	catalog := s.Catalog()

	require.Len(t, catalog, len(StatementKinds)*len(StatementYears))

	available := 0
	for _, info := range catalog {
		if info.Available {
			available++
			assert.Equal(t, "재무상태표_2022.pdf", info.FileName)
		}
	}
	assert.Equal(t, 1, available)
}
