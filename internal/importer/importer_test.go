package importer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hvpham/lexiflash/internal/importer"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeXLSX(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, name, cell))
		}
	}
	path := filepath.Join(t.TempDir(), "deck.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestParseCSV(t *testing.T) {
	path := writeCSV(t, "apple,a round fruit\nberry,a small fruit\n")

	result, err := importer.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, result.Cards, 2)
	assert.Equal(t, "apple", result.Cards[0].Word)
	assert.Equal(t, "a round fruit", result.Cards[0].Definition)
	assert.Equal(t, 0, result.Skipped)
}

func TestParseCSVSkipsIncompleteRows(t *testing.T) {
	path := writeCSV(t, "apple,a round fruit\nlonely\n,no word\n  ,  \nberry,a small fruit\n")

	result, err := importer.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, result.Cards, 2)
	assert.Equal(t, 3, result.Skipped)
}

func TestParseCSVTrimsWhitespace(t *testing.T) {
	path := writeCSV(t, "  apple  ,  a round fruit  \n")

	result, err := importer.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, result.Cards, 1)
	assert.Equal(t, "apple", result.Cards[0].Word)
	assert.Equal(t, "a round fruit", result.Cards[0].Definition)
}

func TestParseXLSX(t *testing.T) {
	path := writeXLSX(t, [][]string{
		{"apple", "a round fruit"},
		{"berry"},
		{"cherry", "a stone fruit", "extra column ignored"},
	})

	result, err := importer.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, result.Cards, 2)
	assert.Equal(t, "apple", result.Cards[0].Word)
	assert.Equal(t, "cherry", result.Cards[1].Word)
	assert.Equal(t, 1, result.Skipped)
}

func TestParseFileMissing(t *testing.T) {
	_, err := importer.ParseFile(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestDeckName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"animals_unit_3.xlsx", "animals unit 3"},
		{"/tmp/uploads/spanish-verbs.csv", "spanish verbs"},
		{"plain.xlsx", "plain"},
		{".csv", "imported deck"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, importer.DeckName(tt.filename), tt.filename)
	}
}
