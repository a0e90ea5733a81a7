package programs

import (
	"testing"

	"github.com/orient-research/fundscope/pkg/fundscope/metrics"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

func TestRegistryContract(t *testing.T) {
	// The sheet names and funding columns are a verbatim contract.
	wantSheets := []string{
		"Emergency Connectivity Fund",
		"E-Rate",
		"Public Housing Funding",
		"Lifeline Program",
		"Grants.Gov",
		"FTIA Funding Report",
		"TP Cap Fund",
		"Marketing",
		"990Breakdown",
		"NEWS",
	}
	if len(Registry) != len(wantSheets) {
		t.Fatalf("registry has %d programs, want %d", len(Registry), len(wantSheets))
	}
	for i, want := range wantSheets {
		if Registry[i].Name != want {
			t.Errorf("program %d = %q, want %q", i, Registry[i].Name, want)
		}
	}

	terms := FundingTerms()
	want := []metrics.FundingTerm{
		{Sheet: "Emergency Connectivity Fund", Column: "FRN Approved Amount"},
		{Sheet: "E-Rate", Column: "Category1_Funding"},
		{Sheet: "E-Rate", Column: "Category2_Funding"},
		{Sheet: "Public Housing Funding", Column: "Award_Amount_USD"},
	}
	if len(terms) != len(want) {
		t.Fatalf("funding terms = %v, want %v", terms, want)
	}
	for i := range want {
		if terms[i] != want[i] {
			t.Errorf("term %d = %+v, want %+v", i, terms[i], want[i])
		}
	}
}

func TestBySlug(t *testing.T) {
	p, ok := BySlug("public-housing-funding")
	if !ok || p.Name != "Public Housing Funding" {
		t.Errorf("BySlug = (%+v, %v)", p, ok)
	}
	if _, ok := BySlug("nope"); ok {
		t.Error("BySlug(nope) should not resolve")
	}
}

func TestCollectMissingSheet(t *testing.T) {
	wb := models.NewWorkbook("test.xlsx")
	p, _ := BySlug("e-rate")
	m := Collect(wb, p)
	if m.Available {
		t.Errorf("metrics for absent sheet tagged available: %+v", m)
	}
}

func TestCollectIsolatesMissingColumns(t *testing.T) {
	// The sheet exists but lacks the In_Building_WiFi column; every other
	// metric still computes.
	wb := models.NewWorkbook("test.xlsx")
	wb.AddSheet(&models.Sheet{
		Name: "Public Housing Funding",
		Columns: []models.Column{
			{Name: "Development_Name", Kind: models.KindText},
			{Name: "State", Kind: models.KindText},
			{Name: "Award_Amount_USD", Kind: models.KindNumeric},
			{Name: "Connected", Kind: models.KindBoolean},
		},
		Rows: [][]models.Value{
			{models.Text("Sunrise Court"), models.Text("CA"), models.Numeric(1000), models.Boolean(true)},
			{models.Text("Oak Terrace"), models.Text("TX"), models.Numeric(500), models.Boolean(false)},
		},
	})

	p, _ := BySlug("public-housing-funding")
	m := Collect(wb, p)

	if !m.Available || m.Records != 2 {
		t.Fatalf("metrics = %+v, want available with 2 records", m)
	}
	if m.Funding.Total != 1500 {
		t.Errorf("funding = %v, want 1500", m.Funding.Total)
	}
	if m.States == nil || !m.States.Available || m.States.Value != 2 {
		t.Errorf("states = %+v, want 2", m.States)
	}
	if len(m.BoolRates) != 2 {
		t.Fatalf("bool rates = %d, want 2", len(m.BoolRates))
	}
	if !m.BoolRates[0].Available || m.BoolRates[0].Rate.True != 1 {
		t.Errorf("Connected rate = %+v", m.BoolRates[0])
	}
	if m.BoolRates[1].Available || m.BoolRates[1].Reason == "" {
		t.Errorf("In_Building_WiFi should be tagged unavailable: %+v", m.BoolRates[1])
	}
}
