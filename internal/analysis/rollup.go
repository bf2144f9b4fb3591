package analysis

import (
	"math"

	"energy-package-roi/internal/simulate"
)

// Cumulative returns the running sum of net position: out[k] = Σ net[0..k].
func Cumulative(records []simulate.MonthlyRecord) []float64 {
	out := make([]float64, len(records))
	cum := 0.0
	for i, r := range records {
		cum += r.NetPosition
		out[i] = cum
	}
	return out
}

// AnnualSummary aggregates the months of one elapsed year.
type AnnualSummary struct {
	Year     int                       `json:"year"`
	Months   int                       `json:"months"`
	Costs    simulate.CostBreakdown    `json:"costs"`
	Benefits simulate.BenefitBreakdown `json:"benefits"`

	TotalCosts    float64 `json:"total_costs"`
	TotalBenefits float64 `json:"total_benefits"`
	NetPosition   float64 `json:"net_position"`
	// CumulativeNet is the running net position at the end of this year.
	CumulativeNet float64 `json:"cumulative_net"`

	// Health at the last month of the year.
	Health simulate.AssetHealth `json:"health"`
}

// AnnualRollup groups records by floor(Year) in record order.
func AnnualRollup(records []simulate.MonthlyRecord) []AnnualSummary {
	var out []AnnualSummary
	cum := 0.0
	for _, r := range records {
		year := int(math.Floor(r.Year))
		if len(out) == 0 || out[len(out)-1].Year != year {
			out = append(out, AnnualSummary{Year: year})
		}
		s := &out[len(out)-1]
		s.Months++
		s.Costs = s.Costs.Add(r.Costs)
		s.Benefits = s.Benefits.Add(r.Benefits)
		s.NetPosition += r.NetPosition
		cum += r.NetPosition
		s.CumulativeNet = cum
		s.Health = r.Health
	}
	for i := range out {
		out[i].TotalCosts = out[i].Costs.Total()
		out[i].TotalBenefits = out[i].Benefits.Total()
	}
	return out
}
