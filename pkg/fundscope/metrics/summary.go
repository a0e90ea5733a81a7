package metrics

import (
	"strings"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// SheetOverview summarizes one sheet for the data-overview table.
type SheetOverview struct {
	Sheet         string   `json:"sheet"`
	Records       int      `json:"records"`
	Columns       int      `json:"columns"`
	SampleColumns []string `json:"sample_columns"`
}

// Overview lists every sheet in workbook order with record and column
// counts plus up to five sample column names.
func Overview(wb *models.Workbook) []SheetOverview {
	out := make([]SheetOverview, 0, wb.NumSheets())
	for _, name := range wb.SheetNames() {
		sheet, _ := wb.Sheet(name)
		ov := SheetOverview{
			Sheet:   name,
			Records: sheet.NumRows(),
			Columns: sheet.NumColumns(),
		}
		for i, col := range sheet.Columns {
			if i == 5 {
				break
			}
			ov.SampleColumns = append(ov.SampleColumns, col.Name)
		}
		out = append(out, ov)
	}
	return out
}

// TotalRecords counts data rows across all sheets.
func TotalRecords(wb *models.Workbook) int {
	total := 0
	for _, name := range wb.SheetNames() {
		sheet, _ := wb.Sheet(name)
		total += sheet.NumRows()
	}
	return total
}

// StatesCovered counts the distinct non-empty values across every column
// of every sheet whose name contains "state" (case-insensitive).
func StatesCovered(wb *models.Workbook) int {
	seen := make(map[string]struct{})
	for _, name := range wb.SheetNames() {
		sheet, _ := wb.Sheet(name)
		for i, col := range sheet.Columns {
			if !strings.Contains(strings.ToLower(col.Name), "state") {
				continue
			}
			for _, row := range sheet.Rows {
				if s := strings.TrimSpace(row[i].String()); s != "" {
					seen[s] = struct{}{}
				}
			}
		}
	}
	return len(seen)
}

// DistinctCount counts the distinct non-empty stringified values of one
// column.
func DistinctCount(wb *models.Workbook, sheetName, column string) (int, error) {
	sheet, idx, err := resolve(wb, sheetName, column)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{})
	for _, row := range sheet.Rows {
		if s := strings.TrimSpace(row[idx].String()); s != "" {
			seen[s] = struct{}{}
		}
	}
	return len(seen), nil
}
