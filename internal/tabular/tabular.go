// Package tabular turns uploaded statement files into rows of string cells.
// The importer works on [][]string regardless of whether the source was a
// CSV export or a spreadsheet.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	enc "github.com/MrJamesThe3rd/ledgerly/internal/encoding"
)

// Read parses the file into rows. Row 0 is expected to be the header row.
// CSV content is charset-detected and decoded to UTF-8 first; .xlsx
// workbooks are read from their first sheet.
func Read(r io.Reader, filename string) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readWorkbook(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", ext)
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true    // Allow sloppy quotes if necessary

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	return rows, nil
}
