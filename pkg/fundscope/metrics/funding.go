// Package metrics computes derived metrics over a normalized workbook.
//
// Every function treats a missing sheet or column as a soft condition
// scoped to that one metric: the result is tagged or a typed error is
// returned, and sibling computations are never affected.
package metrics

import (
	"strconv"

	"github.com/orient-research/fundscope/pkg/fundscope/loader"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// FundingTerm names one (sheet, column) contribution to a funding total.
type FundingTerm struct {
	Sheet  string `json:"sheet"`
	Column string `json:"column"`
}

// TermResult reports one term's contribution. Missing is true when the
// sheet or column was absent; the term then contributes zero.
type TermResult struct {
	FundingTerm
	Amount  float64 `json:"amount"`
	Missing bool    `json:"missing,omitempty"`
}

// FundingTotal is the summed funding across all configured terms.
type FundingTotal struct {
	Total float64      `json:"total"`
	Terms []TermResult `json:"terms"`
}

// TotalFunding sums the configured amount columns across the workbook.
// Each term is independently optional, and unparseable cells contribute
// zero, so the computation itself never fails.
func TotalFunding(wb *models.Workbook, terms []FundingTerm) FundingTotal {
	out := FundingTotal{Terms: make([]TermResult, 0, len(terms))}
	for _, term := range terms {
		res := TermResult{FundingTerm: term}
		sum, err := ColumnSum(wb, term.Sheet, term.Column)
		if err != nil {
			res.Missing = true
		} else {
			res.Amount = sum
			out.Total += sum
		}
		out.Terms = append(out.Terms, res)
	}
	return out
}

// ColumnSum sums the numeric readings of one column. Null and
// non-numeric residues are excluded from the sum, not propagated.
func ColumnSum(wb *models.Workbook, sheetName, column string) (float64, error) {
	sheet, idx, err := resolve(wb, sheetName, column)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, row := range sheet.Rows {
		if f, ok := numericValue(row[idx]); ok {
			sum += f
		}
	}
	return sum, nil
}

// resolve looks up a sheet and one of its columns, converting absence into
// the soft error types.
func resolve(wb *models.Workbook, sheetName, column string) (*models.Sheet, int, error) {
	sheet, ok := wb.Sheet(sheetName)
	if !ok {
		return nil, -1, &MissingSheetError{Sheet: sheetName}
	}
	idx := sheet.ColumnIndex(column)
	if idx < 0 {
		return nil, -1, &MissingColumnError{Sheet: sheetName, Column: column}
	}
	return sheet, idx, nil
}

// numericValue extracts a numeric reading from a cell. Text cells are
// re-cleaned with the loader's currency rules, so a column that stayed
// Text because of a few stray entries still contributes its parseable
// amounts.
func numericValue(v models.Value) (float64, bool) {
	switch v.Kind {
	case models.KindNumeric:
		return v.Num, v.Valid
	case models.KindText:
		if v.Str == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(loader.CleanNumeric(v.Str), 64)
		return f, err == nil
	}
	return 0, false
}
