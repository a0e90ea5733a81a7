package models

// Column describes one named, kind-stable column of a Sheet. Column names
// are case- and punctuation-sensitive; they are the contract between the
// workbook and the program views that read it.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Sheet is one named table of a Workbook: an ordered sequence of columns
// and an ordered sequence of rows of normalized values. A Sheet is
// immutable after normalization; derived views (filters, top-N) are new
// Sheets sharing the same rows.
type Sheet struct {
	Name    string    `json:"name"`
	Columns []Column  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1 when absent.
// Lookup is exact: names match case-sensitively.
func (s *Sheet) ColumnIndex(name string) int {
	for i, col := range s.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// NumRows reports the number of data rows.
func (s *Sheet) NumRows() int { return len(s.Rows) }

// NumColumns reports the number of columns.
func (s *Sheet) NumColumns() int { return len(s.Columns) }
