// Package loader reads every sheet of an xlsx workbook and normalizes each
// column to a stable kind (numeric, boolean, temporal or text).
//
// Normalization is a pure transform: the same input bytes always produce
// the same workbook, so callers may cache results by a fingerprint of the
// bytes.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
	"github.com/xuri/excelize/v2"
)

// Load parses workbook bytes and returns the normalized Workbook. It fails
// only when the bytes cannot be opened as a spreadsheet or the workbook
// has zero sheets; coercion issues inside a sheet fall back per column and
// never abort the load.
func Load(b []byte) (*models.Workbook, error) {
	return LoadNamed(b, "workbook.xlsx")
}

// LoadNamed is Load with an explicit book name for error reporting.
func LoadNamed(b []byte, bookName string) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, &LoadError{BookName: bookName, Err: fmt.Errorf("%w: %v", ErrInvalidFormat, err)}
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, &LoadError{BookName: bookName, Err: ErrNoSheets}
	}

	wb := models.NewWorkbook(bookName)
	for _, sheetName := range sheetList {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			// Keep the sheet present but empty rather than failing the book.
			rows = nil
		}
		wb.AddSheet(NormalizeGrid(sheetName, rows))
	}
	return wb, nil
}

// LoadFile reads and normalizes the workbook at path.
func LoadFile(path string) (*models.Workbook, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{BookName: filepath.Base(path), Err: err}
	}
	return LoadNamed(b, filepath.Base(path))
}

// NormalizeGrid turns a raw string grid (header row first, then data rows)
// into a kind-stable Sheet. Exported so round-trip consumers (CSV
// re-import) share the exact promotion rules of the xlsx path.
func NormalizeGrid(name string, grid [][]string) *models.Sheet {
	sheet := &models.Sheet{Name: name}
	if len(grid) == 0 {
		return sheet
	}

	header := grid[0]
	data := grid[1:]

	// excelize trims trailing empty cells per row; the sheet width is the
	// widest of the header and any data row.
	width := len(header)
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return sheet
	}

	sheet.Columns = make([]models.Column, width)
	byColumn := make([][]models.Value, width)
	for c := 0; c < width; c++ {
		colName := ""
		if c < len(header) {
			colName = strings.TrimSpace(header[c])
		}
		if colName == "" {
			colName = fmt.Sprintf("Column %d", c+1)
		}

		cells := make([]string, len(data))
		for r, row := range data {
			if c < len(row) {
				cells[r] = strings.TrimSpace(row[c])
			}
		}

		kind, values := promote(colName, cells)
		sheet.Columns[c] = models.Column{Name: colName, Kind: kind}
		byColumn[c] = values
	}

	sheet.Rows = make([][]models.Value, len(data))
	for r := range data {
		row := make([]models.Value, width)
		for c := 0; c < width; c++ {
			row[c] = byColumn[c][r]
		}
		sheet.Rows[r] = row
	}
	return sheet
}
