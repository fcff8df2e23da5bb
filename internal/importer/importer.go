package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hvpham/lexiflash/internal/models"
)

// Result holds the outcome of parsing a deck file.
type Result struct {
	Cards   []models.Card
	Skipped int
}

// ParseFile reads a deck file into cards. The format is chosen by
// extension: .csv is parsed as comma-separated rows, everything else as an
// xlsx workbook. Column A holds the word, column B the definition; rows
// missing either are skipped and counted, not fatal.
func ParseFile(path string) (*Result, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return parseCSV(path)
	}
	return parseXLSX(path)
}

func parseXLSX(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	result := &Result{}
	for _, row := range rows {
		appendRow(result, row)
	}
	return result, nil
}

func parseCSV(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &Result{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		appendRow(result, row)
	}
	return result, nil
}

func appendRow(result *Result, row []string) {
	var word, definition string
	if len(row) > 0 {
		word = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		definition = strings.TrimSpace(row[1])
	}
	if word == "" || definition == "" {
		result.Skipped++
		return
	}
	result.Cards = append(result.Cards, models.Card{Word: word, Definition: definition})
}

// DeckName derives a deck name from a file name, e.g.
// "animals_unit_3.xlsx" becomes "animals unit 3".
func DeckName(filename string) string {
	name := filepath.Base(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	name = strings.TrimSpace(name)
	if name == "" {
		name = "imported deck"
	}
	return name
}
