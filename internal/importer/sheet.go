package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/lexibox/internal/domain"
	"github.com/xuri/excelize/v2"
)

// WordRow is one word / sentence / note row from a spreadsheet. Row is the
// 1-based row number in the source file.
type WordRow struct {
	Row      int
	Word     string
	Sentence string
	Note     string
}

// ReadWords reads word rows from an .xlsx or .csv file. The first row is a
// header and is skipped, as are blank rows.
func ReadWords(path string) ([]WordRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcel(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %v: %w", path, err, domain.ErrPersistence)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported word file %q (want .xlsx or .csv): %w", path, domain.ErrValidation)
	}
}

func readExcel(path string) ([]WordRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %v: %w", path, err, domain.ErrPersistence)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %v: %w", sheets[0], err, domain.ErrPersistence)
	}

	var out []WordRow
	for i, cells := range rows {
		if i == 0 {
			continue
		}
		if row, ok := toWordRow(i+1, cells); ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// ReadCSV reads word rows from CSV text with a header row.
func ReadCSV(r io.Reader) ([]WordRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var out []WordRow
	rowNum := 0
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %v: %w", err, domain.ErrPersistence)
		}
		rowNum++
		if rowNum == 1 {
			continue
		}
		if row, ok := toWordRow(rowNum, cells); ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func toWordRow(rowNum int, cells []string) (WordRow, bool) {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	row := WordRow{Row: rowNum, Word: cell(0), Sentence: cell(1), Note: cell(2)}
	if row.Word == "" && row.Sentence == "" && row.Note == "" {
		return WordRow{}, false
	}
	return row, true
}
