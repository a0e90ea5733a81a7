package loader

import (
	"testing"

	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

func TestIsTemporalName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Award Date", true},
		{"last_updated_DATE", true},
		{"Timestamp", true},
		{"Response Time", true},
		{"State", false},
		{"Amount", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTemporalName(tt.name); got != tt.want {
			t.Errorf("IsTemporalName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCleanNumeric(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$1,000", "1000"},
		{"$2,500.75", "2500.75"},
		{"(300)", "-300"},
		{"($1,234)", "-1234"},
		{"  42 ", "42"},
		{"-17", "-17"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanNumeric(tt.input); got != tt.want {
			t.Errorf("CleanNumeric(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
		ok    bool
	}{
		{"TRUE", true, true},
		{"false", false, true},
		{"1", true, true},
		{"0", false, true},
		{"Yes", true, true},
		{"no", false, true},
		{"maybe", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		got, ok := ParseBool(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseBool(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

// grid builds a one-column grid with the given header and cells.
func grid(header string, cells ...string) [][]string {
	g := [][]string{{header}}
	for _, c := range cells {
		g = append(g, []string{c})
	}
	return g
}

func TestNumericPromotionAllOrNothing(t *testing.T) {
	// One stray entry reverts the whole column to Text with no data loss.
	sheet := NormalizeGrid("s", grid("Amount", "$1,000", "$2,500", "abc"))
	if got := sheet.Columns[0].Kind; got != models.KindText {
		t.Fatalf("kind = %s, want text", got)
	}
	want := []string{"$1,000", "$2,500", "abc"}
	for i, w := range want {
		if got := sheet.Rows[i][0].Str; got != w {
			t.Errorf("row %d = %q, want %q", i, got, w)
		}
	}

	// All values parse once cleaned, including accounting negatives.
	sheet = NormalizeGrid("s", grid("Amount", "$1,000", "$2,500", "(300)"))
	if got := sheet.Columns[0].Kind; got != models.KindNumeric {
		t.Fatalf("kind = %s, want numeric", got)
	}
	wantNums := []float64{1000, 2500, -300}
	for i, w := range wantNums {
		v := sheet.Rows[i][0]
		if !v.Valid || v.Num != w {
			t.Errorf("row %d = %+v, want %v", i, v, w)
		}
	}
}

func TestNumericPromotionSkipsEmptyCells(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Amount", "$100", "", "200"))
	if got := sheet.Columns[0].Kind; got != models.KindNumeric {
		t.Fatalf("kind = %s, want numeric", got)
	}
	if v := sheet.Rows[1][0]; v.Valid {
		t.Errorf("empty cell = %+v, want null numeric", v)
	}
}

func TestBooleanPromotion(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Connected", "TRUE", "0", "Yes", "no", "1"))
	if got := sheet.Columns[0].Kind; got != models.KindBoolean {
		t.Fatalf("kind = %s, want boolean", got)
	}
	want := []bool{true, false, true, false, true}
	for i, w := range want {
		v := sheet.Rows[i][0]
		if v.Bool != w {
			t.Errorf("row %d = %v, want %v", i, v.Bool, w)
		}
	}
}

func TestBooleanMissingBecomesFalse(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Connected", "yes", "", "no"))
	if got := sheet.Columns[0].Kind; got != models.KindBoolean {
		t.Fatalf("kind = %s, want boolean", got)
	}
	v := sheet.Rows[1][0]
	if !v.Valid || v.Bool {
		t.Errorf("missing boolean = %+v, want valid false", v)
	}
}

func TestBooleanUnmappableRevertsToText(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Connected", "yes", "maybe", "no"))
	if got := sheet.Columns[0].Kind; got != models.KindText {
		t.Fatalf("kind = %s, want text", got)
	}
}

func TestTemporalPromotion(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Award Date", "2023-01-15", "01/20/2023", "not a date", ""))
	if got := sheet.Columns[0].Kind; got != models.KindTemporal {
		t.Fatalf("kind = %s, want temporal", got)
	}
	if v := sheet.Rows[0][0]; !v.Valid || v.Time.Year() != 2023 || v.Time.Month() != 1 || v.Time.Day() != 15 {
		t.Errorf("row 0 = %+v, want 2023-01-15", v)
	}
	if v := sheet.Rows[1][0]; !v.Valid || v.Time.Day() != 20 {
		t.Errorf("row 1 = %+v, want 2023-01-20", v)
	}
	// Per-cell failures become null, not a column failure.
	if v := sheet.Rows[2][0]; v.Valid {
		t.Errorf("row 2 = %+v, want null temporal", v)
	}
	if v := sheet.Rows[3][0]; v.Valid {
		t.Errorf("row 3 = %+v, want null temporal", v)
	}
}

func TestTemporalAllUnparseableFallsBackToText(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Date", "pending", "unknown"))
	if got := sheet.Columns[0].Kind; got != models.KindText {
		t.Fatalf("kind = %s, want text", got)
	}
	if got := sheet.Rows[0][0].Str; got != "pending" {
		t.Errorf("row 0 = %q, want %q", got, "pending")
	}
}

func TestTextFallbackNeverNull(t *testing.T) {
	sheet := NormalizeGrid("s", grid("Notes", "hello", "", "world"))
	if got := sheet.Columns[0].Kind; got != models.KindText {
		t.Fatalf("kind = %s, want text", got)
	}
	v := sheet.Rows[1][0]
	if !v.Valid || v.Str != "" {
		t.Errorf("missing text = %+v, want valid empty string", v)
	}
}

func TestMissingHeaderGetsPlaceholderName(t *testing.T) {
	sheet := NormalizeGrid("s", [][]string{
		{"A", ""},
		{"x", "y"},
	})
	if got := sheet.Columns[1].Name; got != "Column 2" {
		t.Errorf("column 1 name = %q, want %q", got, "Column 2")
	}
}
