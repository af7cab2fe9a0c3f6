package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadXLSXFirstSheetOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "ID")
	f.SetCellValue("Sheet1", "B1", "Phone")
	f.SetCellValue("Sheet1", "C1", "Status")
	f.SetCellValue("Sheet1", "A2", 1)
	f.SetCellValue("Sheet1", "B2", "5551234567")
	f.SetCellValue("Sheet1", "A3", 2)
	f.SetCellValue("Sheet1", "C3", "PO")
	_, err := f.NewSheet("Other")
	require.NoError(t, err)
	f.SetCellValue("Other", "A1", "ignored")

	path := filepath.Join(t.TempDir(), "main.xlsx")
	require.NoError(t, f.SaveAs(path))

	s, err := NewFileStore().Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Phone", "Status"}, s.Header())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"1", "5551234567", ""}, s.Row(0))
	assert.Equal(t, []string{"2", "", "PO"}, s.Row(1))
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.xlsx")
	s := NewSheet([]string{"ID", "Name", "Level"})
	s.Append([]string{"7", "Ana", "1"}, []string{"8", "", "2"})

	fs := NewFileStore()
	require.NoError(t, fs.Write(path, s))

	got, err := fs.Read(path)
	require.NoError(t, err)
	assert.Equal(t, s.Rows, got.Rows)

	// Overwrite replaces the previous content.
	require.NoError(t, fs.Write(path, NewSheet([]string{"Only"})))
	got, err = fs.Read(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Only"}}, got.Rows)
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.csv")
	content := "\ufeffPhone,First,Last\n(555) 000-1111,Ana,Diaz\n5552223333,Bob\n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := NewFileStore().Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Phone", "First", "Last"}, s.Header())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"5552223333", "Bob", ""}, s.Row(1))
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	s, err := NewFileStore().Read(path)
	require.NoError(t, err)
	assert.Nil(t, s.Header())
	assert.Equal(t, 0, s.Len())
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileStore().Read(filepath.Join(dir, "missing.xlsx"))
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)

	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0644))
	_, err = NewFileStore().Read(txt)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat), "expected ErrUnsupportedFormat, got %v", err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected FileFormat
	}{
		{"Datos.xlsx", FormatXLSX},
		{"DATOS.XLSX", FormatXLSX},
		{"old.xls", FormatXLS},
		{"batch.CSV", FormatCSV},
		{"readme.md", FormatUnknown},
		{"noext", FormatUnknown},
	}

	for _, tt := range tests {
		if result := Format(tt.path); result != tt.expected {
			t.Errorf("Format(%q) = %q, expected %q", tt.path, result, tt.expected)
		}
	}
}
