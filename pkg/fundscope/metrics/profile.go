package metrics

import (
	"strings"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// ColumnStats profiles one normalized column for the structure report.
// Min, Max and Sum are populated for numeric columns only.
type ColumnStats struct {
	Name     string      `json:"name"`
	Kind     models.Kind `json:"kind"`
	Missing  int         `json:"missing"`
	Distinct int         `json:"distinct"`
	Sum      float64     `json:"sum,omitempty"`
	Min      float64     `json:"min,omitempty"`
	Max      float64     `json:"max,omitempty"`
}

// ProfileSheet computes per-column statistics of a normalized sheet:
// missing counts, distinct values and basic numeric aggregates.
func ProfileSheet(sheet *models.Sheet) []ColumnStats {
	stats := make([]ColumnStats, len(sheet.Columns))
	for c, col := range sheet.Columns {
		st := ColumnStats{Name: col.Name, Kind: col.Kind}
		seen := make(map[string]struct{})
		first := true
		for _, row := range sheet.Rows {
			v := row[c]
			s := v.String()
			if strings.TrimSpace(s) == "" {
				st.Missing++
			} else {
				seen[s] = struct{}{}
			}
			if col.Kind == models.KindNumeric && v.Valid {
				st.Sum += v.Num
				if first || v.Num < st.Min {
					st.Min = v.Num
				}
				if first || v.Num > st.Max {
					st.Max = v.Num
				}
				first = false
			}
		}
		st.Distinct = len(seen)
		stats[c] = st
	}
	return stats
}
