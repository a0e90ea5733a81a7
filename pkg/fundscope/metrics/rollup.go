package metrics

import (
	"sort"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// RollupSort selects the ordering of rollup groups.
type RollupSort string

const (
	// SortNone keeps groups in first-occurrence order.
	SortNone RollupSort = ""
	// SortCount orders groups by descending row count.
	SortCount RollupSort = "count"
	// SortSum orders groups by descending numeric sum.
	SortSum RollupSort = "sum"
)

// RollupGroup is one group of a rollup: row count, numeric sum of the
// designated column and true-occurrence counts per boolean column.
type RollupGroup struct {
	Key        string         `json:"key"`
	Count      int            `json:"count"`
	Sum        float64        `json:"sum"`
	BoolCounts map[string]int `json:"bool_counts,omitempty"`
}

// Rollup groups the rows of a sheet by a categorical column. sumColumn and
// boolColumns are optional (empty means not computed). Groups appear in
// first-occurrence order; count/sum sorts are descending and stable, so
// ties keep first-occurrence order.
func Rollup(wb *models.Workbook, sheetName, keyColumn, sumColumn string, boolColumns []string, sortBy RollupSort) ([]RollupGroup, error) {
	sheet, keyIdx, err := resolve(wb, sheetName, keyColumn)
	if err != nil {
		return nil, err
	}

	sumIdx := -1
	if sumColumn != "" {
		if sumIdx = sheet.ColumnIndex(sumColumn); sumIdx < 0 {
			return nil, &MissingColumnError{Sheet: sheetName, Column: sumColumn}
		}
	}
	boolIdx := make(map[string]int, len(boolColumns))
	for _, name := range boolColumns {
		i := sheet.ColumnIndex(name)
		if i < 0 {
			return nil, &MissingColumnError{Sheet: sheetName, Column: name}
		}
		boolIdx[name] = i
	}

	index := make(map[string]int)
	groups := make([]RollupGroup, 0)
	for _, row := range sheet.Rows {
		key := row[keyIdx].String()
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			g := RollupGroup{Key: key}
			if len(boolIdx) > 0 {
				g.BoolCounts = make(map[string]int, len(boolIdx))
			}
			groups = append(groups, g)
		}
		g := &groups[gi]
		g.Count++
		if sumIdx >= 0 {
			if f, ok := numericValue(row[sumIdx]); ok {
				g.Sum += f
			}
		}
		for name, i := range boolIdx {
			if b, known := booleanValue(row[i]); known && b {
				g.BoolCounts[name]++
			}
		}
	}

	switch sortBy {
	case SortCount:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	case SortSum:
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Sum > groups[j].Sum })
	}
	return groups, nil
}
