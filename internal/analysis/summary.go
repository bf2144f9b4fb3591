package analysis

import "energy-package-roi/internal/simulate"

// Summary is the headline view of one simulation.
type Summary struct {
	Months        int     `json:"months"`
	TotalCosts    float64 `json:"total_costs"`
	TotalBenefits float64 `json:"total_benefits"`
	NetPosition   float64 `json:"net_position"`

	AverageMonthlyNet     float64 `json:"average_monthly_net"`
	FirstMonthNet         float64 `json:"first_month_net"`
	AverageMonthlyBenefit float64 `json:"average_monthly_benefit"`

	// BreakEvenMonth is the first month after which cumulative net never
	// drops below zero again; -1 if that never happens within the horizon.
	BreakEvenMonth int `json:"break_even_month"`

	UpfrontCost float64 `json:"upfront_cost"`
	// PaybackYears is upfront cost over first-year annual benefits; -1 when benefits are not positive.
	PaybackYears float64 `json:"payback_years"`
}

// Summarize totals a record sequence. Payback fields are left zero; see SummarizeResult.
func Summarize(records []simulate.MonthlyRecord) Summary {
	s := Summary{Months: len(records), BreakEvenMonth: -1}
	if len(records) == 0 {
		return s
	}

	cum := Cumulative(records)
	for _, r := range records {
		s.TotalCosts += r.Costs.Total()
		s.TotalBenefits += r.Benefits.Total()
		s.NetPosition += r.NetPosition
	}
	s.AverageMonthlyNet = s.NetPosition / float64(len(records))
	s.AverageMonthlyBenefit = s.TotalBenefits / float64(len(records))
	s.FirstMonthNet = records[0].NetPosition

	lastNegative := -1
	for i, c := range cum {
		if c < 0 {
			lastNegative = i
		}
	}
	if lastNegative+1 < len(records) {
		s.BreakEvenMonth = records[lastNegative+1].Month
	}
	return s
}

// SummarizeResult adds simple payback: upfront cost / (first-year monthly benefits × 12).
func SummarizeResult(res *simulate.Result) Summary {
	if res == nil {
		return Summarize(nil)
	}
	s := Summarize(res.Records)
	s.UpfrontCost = res.UpfrontCost

	n := len(res.Records)
	if n > 12 {
		n = 12
	}
	firstYear := 0.0
	for _, r := range res.Records[:n] {
		firstYear += r.Benefits.Total()
	}
	s.PaybackYears = -1
	if n > 0 && firstYear > 0 {
		s.PaybackYears = res.UpfrontCost / (firstYear / float64(n) * 12)
	}
	return s
}
