package loader

import (
	"strconv"
	"strings"
	"time"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// IsTemporalName reports whether a column name selects temporal promotion.
// The dispatch is name-based by contract: any column whose name contains
// "date" or "time" (case-insensitive) is parsed as date/time.
func IsTemporalName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "date") || strings.Contains(lower, "time")
}

// temporalLayouts are tried in order for each cell of a temporal column.
// RFC 3339 comes first so exported sheets re-import unchanged.
var temporalLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// boolTokens is the recognized boolean vocabulary, matched case-insensitively.
var boolTokens = map[string]bool{
	"true":  true,
	"false": false,
	"1":     true,
	"0":     false,
	"yes":   true,
	"no":    false,
}

// ParseBool maps one textual encoding to a boolean. ok is false for values
// outside the recognized vocabulary; callers must treat those as unknown,
// never as false.
func ParseBool(s string) (value, ok bool) {
	v, ok := boolTokens[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

// CleanNumeric strips the currency symbol and thousands separators from a
// raw cell and rewrites accounting-notation negatives: "($1,234)" becomes
// "-1234". The result may still fail to parse as a number.
func CleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 1 {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if neg && s != "" && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// promote applies the per-column normalization policy: temporal for
// date/time-named columns, then all-or-nothing numeric, then boolean,
// then the text fallback.
func promote(name string, cells []string) (models.Kind, []models.Value) {
	if IsTemporalName(name) {
		if values, ok := promoteTemporal(cells); ok {
			return models.KindTemporal, values
		}
		return models.KindText, promoteText(cells)
	}
	if values, ok := promoteNumeric(cells); ok {
		return models.KindNumeric, values
	}
	if values, ok := promoteBoolean(cells); ok {
		return models.KindBoolean, values
	}
	return models.KindText, promoteText(cells)
}

// promoteTemporal parses every non-empty cell; cells that fail become null
// temporals. The column reverts to Text only when it has non-empty cells
// and none of them parse at all.
func promoteTemporal(cells []string) ([]models.Value, bool) {
	values := make([]models.Value, len(cells))
	nonEmpty, parsed := 0, 0
	for i, cell := range cells {
		if cell == "" {
			values[i] = models.NullTemporal()
			continue
		}
		nonEmpty++
		if t, ok := parseTemporal(cell); ok {
			values[i] = models.Temporal(t)
			parsed++
		} else {
			values[i] = models.NullTemporal()
		}
	}
	if nonEmpty > 0 && parsed == 0 {
		return nil, false
	}
	return values, true
}

func parseTemporal(s string) (time.Time, bool) {
	for _, layout := range temporalLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// promoteNumeric promotes a column only when every non-empty cleaned value
// parses. A single stray non-numeric entry reverts the entire column to
// Text; no partial promotion.
func promoteNumeric(cells []string) ([]models.Value, bool) {
	values := make([]models.Value, len(cells))
	any := false
	for i, cell := range cells {
		if cell == "" {
			values[i] = models.NullNumeric()
			continue
		}
		f, err := strconv.ParseFloat(CleanNumeric(cell), 64)
		if err != nil {
			return nil, false
		}
		values[i] = models.Numeric(f)
		any = true
	}
	if !any {
		// An all-empty column carries no numeric evidence; leave it Text.
		return nil, false
	}
	return values, true
}

// promoteBoolean promotes a column only when every non-empty value maps
// under the recognized vocabulary. Missing cells become false, never null.
func promoteBoolean(cells []string) ([]models.Value, bool) {
	values := make([]models.Value, len(cells))
	any := false
	for i, cell := range cells {
		if cell == "" {
			values[i] = models.Boolean(false)
			continue
		}
		b, ok := ParseBool(cell)
		if !ok {
			return nil, false
		}
		values[i] = models.Boolean(b)
		any = true
	}
	if !any {
		return nil, false
	}
	return values, true
}

func promoteText(cells []string) []models.Value {
	values := make([]models.Value, len(cells))
	for i, cell := range cells {
		values[i] = models.Text(cell)
	}
	return values
}
