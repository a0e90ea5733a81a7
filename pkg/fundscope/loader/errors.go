package loader

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input bytes are not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrNoSheets indicates the workbook parsed but contains zero sheets.
var ErrNoSheets = errors.New("workbook contains no sheets")

// LoadError is fatal for the load operation: the bytes could not be opened
// as a spreadsheet, or no sheets were found. Per-cell and per-column
// coercion issues are recovered locally and never produce a LoadError.
type LoadError struct {
	BookName string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.BookName, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
