package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetSetGrowsShortRows(t *testing.T) {
	s := NewSheet([]string{"A", "B", "C"})
	s.Append([]string{"1"})

	s.Set(0, 2, "x")
	assert.Equal(t, []string{"1", "", "x"}, s.Row(0))

	// Out of range writes are ignored.
	s.Set(5, 0, "y")
	s.Set(0, -1, "y")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "", s.Cell(3, 0))
}

func TestSheetPad(t *testing.T) {
	s := &Sheet{Rows: [][]string{{"A", "B"}, {"1"}, nil}}
	s.pad()
	assert.Equal(t, []string{"1", ""}, s.Row(0))
	assert.Equal(t, []string{"", ""}, s.Row(1))
}

func TestSheetCopiesAreIndependent(t *testing.T) {
	s := NewSheet([]string{"A"})
	src := []string{"v"}
	s.Append(src)
	src[0] = "changed"
	assert.Equal(t, "v", s.Cell(0, 0))

	c := s.Clone()
	c.Set(0, 0, "w")
	assert.Equal(t, "v", s.Cell(0, 0))

	row := s.CopyRow(0)
	row[0] = "z"
	assert.Equal(t, "v", s.Cell(0, 0))
}

func TestTrimEmptyRows(t *testing.T) {
	rows := [][]string{{"H"}, {""}, {"x"}, {" ", ""}, nil}
	assert.Equal(t, [][]string{{"H"}, {""}, {"x"}}, trimEmptyRows(rows))
	assert.Empty(t, trimEmptyRows([][]string{{""}, nil}))
}
