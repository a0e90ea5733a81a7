package programs

import (
	"github.com/orient-research/fundscope/pkg/fundscope/metrics"
	"github.com/orient-research/fundscope/pkg/fundscope/models"
)

// CountMetric is a tagged scalar: Available is false when the backing
// sheet or column was missing, with Reason carrying the soft error.
type CountMetric struct {
	Value     int    `json:"value"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// RateMetric is a boolean rate with an availability tag.
type RateMetric struct {
	Column    string           `json:"column"`
	Rate      metrics.BoolRate `json:"rate"`
	Available bool             `json:"available"`
	Reason    string           `json:"reason,omitempty"`
}

// Metrics is the metric page of one program view. Each field is computed
// independently: a missing column marks just its own entry unavailable and
// never suppresses the others.
type Metrics struct {
	Program   string               `json:"program"`
	Slug      string               `json:"slug"`
	Available bool                 `json:"available"`
	Records   int                  `json:"records"`
	Funding   metrics.FundingTotal `json:"funding"`
	States    *CountMetric         `json:"states,omitempty"`
	Entities  *CountMetric         `json:"entities,omitempty"`
	BoolRates []RateMetric         `json:"bool_rates,omitempty"`
}

// Collect computes the per-program metric page. When the backing sheet is
// absent the whole page is tagged unavailable; otherwise every configured
// metric is attempted independently.
func Collect(wb *models.Workbook, p Program) Metrics {
	m := Metrics{Program: p.Name, Slug: p.Slug}

	sheet, ok := wb.Sheet(p.Name)
	if !ok {
		return m
	}
	m.Available = true
	m.Records = sheet.NumRows()

	var terms []metrics.FundingTerm
	for _, col := range p.FundingColumns {
		terms = append(terms, metrics.FundingTerm{Sheet: p.Name, Column: col})
	}
	m.Funding = metrics.TotalFunding(wb, terms)

	if p.StateColumn != "" {
		m.States = countMetric(metrics.DistinctCount(wb, p.Name, p.StateColumn))
	}
	if p.EntityColumn != "" {
		m.Entities = countMetric(metrics.DistinctCount(wb, p.Name, p.EntityColumn))
	}
	for _, col := range p.BoolColumns {
		entry := RateMetric{Column: col}
		rate, err := metrics.BooleanRate(wb, p.Name, col)
		if err != nil {
			entry.Reason = err.Error()
		} else {
			entry.Available = true
			entry.Rate = rate
		}
		m.BoolRates = append(m.BoolRates, entry)
	}
	return m
}

// CollectAll computes the metric page of every registered program.
func CollectAll(wb *models.Workbook) []Metrics {
	out := make([]Metrics, 0, len(Registry))
	for _, p := range Registry {
		out = append(out, Collect(wb, p))
	}
	return out
}

func countMetric(v int, err error) *CountMetric {
	if err != nil {
		return &CountMetric{Reason: err.Error()}
	}
	return &CountMetric{Value: v, Available: true}
}
