package metrics

import (
	"sort"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// FilterRange returns a derived sheet holding the rows whose value in the
// named numeric column falls inside the inclusive [min, max] range. Rows
// with null or unparseable values are excluded.
func FilterRange(wb *models.Workbook, sheetName, column string, min, max float64) (*models.Sheet, error) {
	sheet, idx, err := resolve(wb, sheetName, column)
	if err != nil {
		return nil, err
	}
	out := &models.Sheet{Name: sheet.Name, Columns: sheet.Columns}
	for _, row := range sheet.Rows {
		f, ok := numericValue(row[idx])
		if !ok || f < min || f > max {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// TopN returns the n rows with the largest value in the named column, ties
// broken by original row order. n must be explicit; rows without a numeric
// reading are excluded from the ranking.
func TopN(wb *models.Workbook, sheetName, column string, n int) (*models.Sheet, error) {
	sheet, idx, err := resolve(wb, sheetName, column)
	if err != nil {
		return nil, err
	}
	return topN(sheet, n, func(row []models.Value) (float64, bool) {
		return numericValue(row[idx])
	}), nil
}

// TopNFunc ranks rows by a derived numeric, for ratio-style metrics that
// have no single source column. derive returns false to exclude a row.
func TopNFunc(wb *models.Workbook, sheetName string, n int, derive func(row []models.Value) (float64, bool)) (*models.Sheet, error) {
	sheet, ok := wb.Sheet(sheetName)
	if !ok {
		return nil, &MissingSheetError{Sheet: sheetName}
	}
	return topN(sheet, n, derive), nil
}

func topN(sheet *models.Sheet, n int, derive func([]models.Value) (float64, bool)) *models.Sheet {
	type ranked struct {
		row []models.Value
		val float64
	}
	var rows []ranked
	for _, row := range sheet.Rows {
		if f, ok := derive(row); ok {
			rows = append(rows, ranked{row: row, val: f})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].val > rows[j].val })
	if n >= 0 && n < len(rows) {
		rows = rows[:n]
	}

	out := &models.Sheet{Name: sheet.Name, Columns: sheet.Columns}
	for _, r := range rows {
		out.Rows = append(out.Rows, r.row)
	}
	return out
}
