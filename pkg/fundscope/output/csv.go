// Package output serializes normalized sheets for export.
package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// WriteCSV writes the sheet as delimited text: a header row of column
// names in table order, then one row per record. Numerics render as plain
// decimal, booleans as true/false, temporals as RFC 3339 and null cells as
// empty fields, so a re-imported export normalizes to the same kinds.
func WriteCSV(w io.Writer, sheet *models.Sheet) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(sheet.Columns))
	for i, col := range sheet.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(sheet.Columns))
	for _, row := range sheet.Rows {
		for i, v := range row {
			record[i] = v.String()
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SheetCSV renders the sheet to a byte slice.
func SheetCSV(sheet *models.Sheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sheet); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
