package metrics

import "fmt"

// MissingSheetError is a soft condition scoped to one metric: the workbook
// has no sheet by that name. Sibling metrics are unaffected.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Sheet)
}

// MissingColumnError is a soft condition scoped to one metric: the sheet
// exists but has no column by that name.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in sheet %q", e.Column, e.Sheet)
}

// IsMissing reports whether err is one of the soft missing-input
// conditions, as opposed to a genuine failure.
func IsMissing(err error) bool {
	switch err.(type) {
	case *MissingSheetError, *MissingColumnError:
		return true
	}
	return false
}
