package analysis

import "energy-package-roi/internal/simulate"

type WaterfallKind string

const (
	KindComponent WaterfallKind = "component"
	KindSubtotal  WaterfallKind = "subtotal"
	KindTotal     WaterfallKind = "total"
)

// WaterfallEntry is one bar of a waterfall chart. Costs are negative.
type WaterfallEntry struct {
	Label  string        `json:"label"`
	Amount float64       `json:"amount"`
	Kind   WaterfallKind `json:"kind"`
}

const (
	LabelTotalCosts    = "Total costs"
	LabelTotalBenefits = "Total benefits"
	LabelNetPosition   = "Net position"
)

// Waterfall decomposes a single month.
func Waterfall(rec simulate.MonthlyRecord) []WaterfallEntry {
	return WaterfallOf(rec.Costs, rec.Benefits)
}

// WaterfallOf lists every cost as a negative component, then their subtotal,
// then every benefit as a positive component, then their subtotal, and finally
// the net total (benefit subtotal + cost subtotal).
//
// Subtotals are accumulated in entry order, so they equal the sum of the
// entries before them and the total equals benefits.Total() - costs.Total().
func WaterfallOf(costs simulate.CostBreakdown, benefits simulate.BenefitBreakdown) []WaterfallEntry {
	cc := costs.Components()
	bc := benefits.Components()
	out := make([]WaterfallEntry, 0, len(cc)+len(bc)+3)

	costSub := 0.0
	for _, c := range cc {
		out = append(out, WaterfallEntry{Label: c.Label, Amount: -c.Amount, Kind: KindComponent})
		costSub += -c.Amount
	}
	out = append(out, WaterfallEntry{Label: LabelTotalCosts, Amount: costSub, Kind: KindSubtotal})

	benefitSub := 0.0
	for _, b := range bc {
		out = append(out, WaterfallEntry{Label: b.Label, Amount: b.Amount, Kind: KindComponent})
		benefitSub += b.Amount
	}
	out = append(out, WaterfallEntry{Label: LabelTotalBenefits, Amount: benefitSub, Kind: KindSubtotal})

	out = append(out, WaterfallEntry{Label: LabelNetPosition, Amount: benefitSub + costSub, Kind: KindTotal})
	return out
}
