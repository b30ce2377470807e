package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/freightlens/freightlens/internal/common"
)

// Read opens the file at path and parses it into a Table based on its
// extension. Supported formats are .xlsx/.xlsm spreadsheets and .csv
// delimited text.
func Read(path string, delimiter rune) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f, delimiter)
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedInput, filepath.Ext(path))
	}
}

// ReadCSV parses delimited text into a Table. The first record is the
// header. Rows may be ragged; missing trailing cells read as empty.
func ReadCSV(r io.Reader, delimiter rune) (*Table, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, common.ErrEmptyDataset
	}

	return NewTable(records[0], records[1:]), nil
}

// ReadXLSX parses the first sheet of a spreadsheet into a Table. Cells are
// read as formatted strings; numeric coercion is left to the engine.
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, common.ErrEmptyDataset
	}

	return NewTable(rows[0], rows[1:]), nil
}
