// Package store reads and writes spreadsheet files as plain tables.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the file extension is not a known spreadsheet format.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// SheetStore reads and writes sheets by path.
type SheetStore interface {
	// Read loads the first sheet of the file at path.
	Read(path string) (*Sheet, error)
	// Write replaces the file at path with a single-sheet workbook.
	Write(path string, s *Sheet) error
}

// FileStore is a SheetStore backed by files on the local disk.
// Writes always produce .xlsx content; reads also accept .xls and .csv.
type FileStore struct {
	// SheetName names the single sheet of written workbooks.
	SheetName string
}

// NewFileStore returns a FileStore with default settings.
func NewFileStore() *FileStore {
	return &FileStore{SheetName: "Sheet1"}
}

// Read loads the first sheet of the file at path. An empty file yields an
// empty sheet. Short data rows are padded to the header width.
func (fs *FileStore) Read(path string) (*Sheet, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	if info.Size() == 0 {
		return &Sheet{}, nil
	}

	var rows [][]string
	switch Format(path) {
	case FormatXLSX:
		rows, err = readXLSX(path)
	case FormatXLS:
		rows, err = readXLS(path)
	case FormatCSV:
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	s := &Sheet{Rows: trimEmptyRows(rows)}
	s.pad()
	return s, nil
}

// Write creates parent directories as needed and atomically replaces path.
func (fs *FileStore) Write(path string, s *Sheet) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	name := fs.SheetName
	if name == "" {
		name = "Sheet1"
	}
	if err := writeXLSX(path, name, s); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FileFormat identifies a spreadsheet container by extension.
type FileFormat string

const (
	FormatXLSX    FileFormat = "xlsx"
	FormatXLS     FileFormat = "xls"
	FormatCSV     FileFormat = "csv"
	FormatUnknown FileFormat = ""
)

// Format returns the container format implied by the file extension.
func Format(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	case ".csv":
		return FormatCSV
	default:
		return FormatUnknown
	}
}

// trimEmptyRows drops trailing rows that have no non-empty cell.
func trimEmptyRows(rows [][]string) [][]string {
	last := -1
	for i, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				last = i
				break
			}
		}
	}
	return rows[:last+1]
}
