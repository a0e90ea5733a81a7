package metrics

import (
	"math"

	"github.com/orient-research/fundscope/pkg/fundscope/loader"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// BoolRate summarizes a boolean-semantics column. Known counts only the
// values that map under the recognized encodings; unmappable values are
// reported as Unknown and excluded from both the numerator and the
// denominator of Percent.
type BoolRate struct {
	Sheet   string  `json:"sheet"`
	Column  string  `json:"column"`
	True    int     `json:"true"`
	Known   int     `json:"known"`
	Unknown int     `json:"unknown"`
	Percent float64 `json:"percent"`
}

// BooleanRate maps each value of the column to a boolean and reports the
// true count and percentage (one decimal place). The column may be a
// normalized Boolean column or a Text column carrying mixed encodings.
func BooleanRate(wb *models.Workbook, sheetName, column string) (BoolRate, error) {
	sheet, idx, err := resolve(wb, sheetName, column)
	if err != nil {
		return BoolRate{}, err
	}

	rate := BoolRate{Sheet: sheetName, Column: column}
	for _, row := range sheet.Rows {
		b, known := booleanValue(row[idx])
		if !known {
			rate.Unknown++
			continue
		}
		rate.Known++
		if b {
			rate.True++
		}
	}
	if rate.Known > 0 {
		rate.Percent = round1(float64(rate.True) / float64(rate.Known) * 100)
	}
	return rate, nil
}

// booleanValue maps one cell to boolean semantics. known is false for
// values outside the recognized vocabulary.
func booleanValue(v models.Value) (value, known bool) {
	switch v.Kind {
	case models.KindBoolean:
		return v.Bool, true
	case models.KindNumeric:
		if !v.Valid {
			return false, false
		}
		switch v.Num {
		case 1:
			return true, true
		case 0:
			return false, true
		}
		return false, false
	case models.KindText:
		if v.Str == "" {
			return false, false
		}
		return loader.ParseBool(v.Str)
	}
	return false, false
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
