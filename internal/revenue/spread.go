package revenue

import "energy-package-roi/internal/model"

// SpreadModel assumes one full charge/discharge cycle per day, buying at the
// off-peak tariff and selling at the peak tariff.
type SpreadModel struct {
	Efficiency    float64
	PeakTariff    float64
	OffPeakTariff float64
	DaysPerMonth  float64
	FeedIn        FeedIn
}

func DefaultSpread() *SpreadModel {
	return &SpreadModel{
		Efficiency:    0.95,
		PeakTariff:    0.30,
		OffPeakTariff: 0.15,
		DaysPerMonth:  30,
		FeedIn:        DefaultFeedIn(),
	}
}

func (m *SpreadModel) Name() string { return "spread" }

func (m *SpreadModel) Validate() error {
	if err := firstErr(
		fraction("revenue.efficiency", m.Efficiency),
		nonNegative("revenue.peak_tariff", m.PeakTariff),
		nonNegative("revenue.off_peak_tariff", m.OffPeakTariff),
		positive("revenue.days_per_month", m.DaysPerMonth),
		m.FeedIn.validate(),
	); err != nil {
		return err
	}
	if m.OffPeakTariff > m.PeakTariff {
		return model.Invalid("revenue.off_peak_tariff", "must not exceed peak_tariff")
	}
	return nil
}

func (m *SpreadModel) MonthlyArbitrage(capacityKWh float64) float64 {
	if capacityKWh <= 0 {
		return 0
	}
	return capacityKWh * m.Efficiency * (m.PeakTariff - m.OffPeakTariff) * m.DaysPerMonth
}

// The spread model has no grid-services streams.
func (m *SpreadModel) MonthlyFCASRevenue(float64) float64           { return 0 }
func (m *SpreadModel) MonthlyDemandResponseRevenue(float64) float64 { return 0 }

func (m *SpreadModel) Estimate(a Assets) Estimate {
	return estimate(m, m.FeedIn, m.DaysPerMonth, a)
}
