package models

// Workbook is the full loaded spreadsheet: an ordered collection of named
// Sheets. It is immutable after load; reloading replaces it wholesale.
type Workbook struct {
	BookName string

	order  []string
	sheets map[string]*Sheet
}

// NewWorkbook creates an empty workbook container.
func NewWorkbook(bookName string) *Workbook {
	return &Workbook{
		BookName: bookName,
		sheets:   make(map[string]*Sheet),
	}
}

// AddSheet appends a sheet, preserving insertion order. A sheet with a
// duplicate name replaces the earlier one without reordering.
func (w *Workbook) AddSheet(s *Sheet) {
	if _, ok := w.sheets[s.Name]; !ok {
		w.order = append(w.order, s.Name)
	}
	w.sheets[s.Name] = s
}

// Sheet returns the named sheet. Lookup is exact and case-sensitive.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := w.sheets[name]
	return s, ok
}

// SheetNames returns sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.order))
	copy(names, w.order)
	return names
}

// NumSheets reports the number of sheets.
func (w *Workbook) NumSheets() int { return len(w.order) }
