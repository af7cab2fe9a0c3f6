package store

// Sheet is an in-memory table. Rows[0] is the header; every following row is a
// data row aligned to it by position.
type Sheet struct {
	Rows [][]string
}

// NewSheet creates a header-only sheet. The header is copied.
func NewSheet(header []string) *Sheet {
	return &Sheet{Rows: [][]string{cloneRow(header)}}
}

// Header returns the header row, or nil for a fully empty sheet.
func (s *Sheet) Header() []string {
	if len(s.Rows) == 0 {
		return nil
	}
	return s.Rows[0]
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows) - 1
}

// Row returns data row i (zero-based, header excluded), or nil if out of range.
func (s *Sheet) Row(i int) []string {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return s.Rows[i+1]
}

// Cell returns the value at data row i and column col. Missing cells read as "".
func (s *Sheet) Cell(i, col int) string {
	row := s.Row(i)
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// Set writes a value at data row i and column col, growing the row when it is
// shorter than col. Negative columns and missing rows are ignored.
func (s *Sheet) Set(i, col int, value string) {
	if col < 0 || i < 0 || i >= s.Len() {
		return
	}
	row := s.Rows[i+1]
	for len(row) <= col {
		row = append(row, "")
	}
	row[col] = value
	s.Rows[i+1] = row
}

// Append adds copies of rows as data rows.
func (s *Sheet) Append(rows ...[]string) {
	if len(s.Rows) == 0 {
		s.Rows = [][]string{nil}
	}
	for _, r := range rows {
		s.Rows = append(s.Rows, cloneRow(r))
	}
}

// CopyRow returns a copy of data row i.
func (s *Sheet) CopyRow(i int) []string {
	return cloneRow(s.Row(i))
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	out := &Sheet{Rows: make([][]string, len(s.Rows))}
	for i, r := range s.Rows {
		out.Rows[i] = cloneRow(r)
	}
	return out
}

// pad extends short data rows with empty trailing cells up to the header width.
func (s *Sheet) pad() {
	width := len(s.Header())
	for i := 1; i < len(s.Rows); i++ {
		for len(s.Rows[i]) < width {
			s.Rows[i] = append(s.Rows[i], "")
		}
	}
}

func cloneRow(r []string) []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r))
	copy(out, r)
	return out
}
