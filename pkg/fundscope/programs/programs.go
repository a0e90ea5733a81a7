// Package programs fixes the contract between workbook sheets and the
// per-program dashboard views: the exact sheet names and the columns each
// view reads. Names are case- and punctuation-sensitive.
package programs

import "github.com/orient-research/fundscope/pkg/fundscope/metrics"

// Program describes one funding-program view.
type Program struct {
	// Name is the sheet name, matched exactly.
	Name string `json:"name"`
	// Slug is the URL-safe identifier of the view.
	Slug string `json:"slug"`
	// FundingColumns are summed into program and total funding.
	FundingColumns []string `json:"funding_columns,omitempty"`
	// StateColumn backs the states-covered metric.
	StateColumn string `json:"state_column,omitempty"`
	// EntityColumn backs the distinct-entity metric.
	EntityColumn string `json:"entity_column,omitempty"`
	// BoolColumns back the boolean-rate metrics.
	BoolColumns []string `json:"bool_columns,omitempty"`
}

// Registry lists every known program view in display order.
var Registry = []Program{
	{
		Name:           "Emergency Connectivity Fund",
		Slug:           "emergency-connectivity-fund",
		FundingColumns: []string{"FRN Approved Amount"},
		StateColumn:    "Billed Entity State",
		EntityColumn:   "Applicant Name",
	},
	{
		Name:           "E-Rate",
		Slug:           "e-rate",
		FundingColumns: []string{"Category1_Funding", "Category2_Funding"},
		StateColumn:    "State",
	},
	{
		Name:           "Public Housing Funding",
		Slug:           "public-housing-funding",
		FundingColumns: []string{"Award_Amount_USD"},
		StateColumn:    "State",
		EntityColumn:   "Development_Name",
		BoolColumns:    []string{"Connected", "In_Building_WiFi"},
	},
	{
		Name:        "Lifeline Program",
		Slug:        "lifeline-program",
		StateColumn: "State",
	},
	{Name: "Grants.Gov", Slug: "grants-gov"},
	{Name: "FTIA Funding Report", Slug: "ftia-funding-report"},
	{Name: "TP Cap Fund", Slug: "tp-cap-fund"},
	{Name: "Marketing", Slug: "marketing"},
	{Name: "990Breakdown", Slug: "990breakdown"},
	{Name: "NEWS", Slug: "news"},
}

// BySlug returns the program with the given slug.
func BySlug(slug string) (Program, bool) {
	for _, p := range Registry {
		if p.Slug == slug {
			return p, true
		}
	}
	return Program{}, false
}

// ByName returns the program backed by the given sheet name.
func ByName(name string) (Program, bool) {
	for _, p := range Registry {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

// FundingTerms enumerates every (sheet, column) pair contributing to total
// funding across the registry. Each term is independently optional.
func FundingTerms() []metrics.FundingTerm {
	var terms []metrics.FundingTerm
	for _, p := range Registry {
		for _, col := range p.FundingColumns {
			terms = append(terms, metrics.FundingTerm{Sheet: p.Name, Column: col})
		}
	}
	return terms
}
