package sheets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/xuri/excelize/v2"
)

// Table is a loaded spreadsheet.
type Table struct {
	Path    string
	Headers []string
	Rows    []Row
	index   map[string]int
}

// Row is one data row. Index is the 1-based row number in the source file, header included.
type Row struct {
	Index int
	cells map[string]string
}

// Load reads the table at path, choosing the reader by file extension.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", shared.ErrInputMissing, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return LoadWorkbook(path)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q (%s)", shared.ErrUnsupportedFormat, ext, path)
	}
}

// LoadWorkbook reads the first worksheet of an Excel workbook.
func LoadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: %s has no worksheets", shared.ErrEmptySheet, path)
	}

	records, err := f.GetRows(sheetList[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q of %s: %w", sheetList[0], path, err)
	}
	return NewTable(path, records)
}

// LoadCSV reads a CSV file.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(path, f)
}

// ReadCSV reads CSV records from r. Rows may have differing field counts.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", name, err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return NewTable(name, records)
}

// NewTable builds a table from raw records whose first record is the header row.
//
// Header names are trimmed and the first of any duplicates wins. Rows with no
// non-blank cell are dropped; short rows read as blank in the missing columns.
func NewTable(path string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmptySheet, path)
	}

	t := &Table{Path: path, index: make(map[string]int)}
	for i, h := range records[0] {
		h = strings.TrimSpace(h)
		t.Headers = append(t.Headers, h)
		if _, dup := t.index[h]; !dup && h != "" {
			t.index[h] = i
		}
	}
	if len(t.index) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmptySheet, path)
	}

	for n, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := Row{Index: n + 2, cells: make(map[string]string, len(t.index))}
		for h, i := range t.index {
			if i < len(record) {
				row.cells[h] = record[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Has reports whether the header row contains col.
func (t *Table) Has(col string) bool {
	_, ok := t.index[strings.TrimSpace(col)]
	return ok
}

// Require returns [shared.ErrMissingColumn] naming the first column absent from the header row.
func (t *Table) Require(cols ...string) error {
	for _, col := range cols {
		if !t.Has(col) {
			return fmt.Errorf("%w: %q in %s", shared.ErrMissingColumn, col, t.Path)
		}
	}
	return nil
}

// Get returns the raw cell under col, or "" when the row or table has no such column.
func (r Row) Get(col string) string {
	return r.cells[strings.TrimSpace(col)]
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
