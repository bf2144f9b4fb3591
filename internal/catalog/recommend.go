package catalog

import "energy-package-roi/internal/model"

// Recommend picks package tiers from simple usage thresholds:
//   - EV by daily commute: <=40 km Essential, <=80 km Performance, else Premium
//   - battery by monthly bill: <=200 Starter, <=400 Essential, else Performance
//   - solar by roof area: <=30 m² Starter, <=45 m² Essential, else Performance
func Recommend(u model.UsageProfile) Selection {
	var sel Selection

	switch {
	case u.DailyCommuteKm <= 40:
		sel.EV = "Essential"
	case u.DailyCommuteKm <= 80:
		sel.EV = "Performance"
	default:
		sel.EV = "Premium"
	}

	switch {
	case u.MonthlyPowerBill <= 200:
		sel.Battery = "Starter"
	case u.MonthlyPowerBill <= 400:
		sel.Battery = "Essential"
	default:
		sel.Battery = "Performance"
	}

	switch {
	case u.RoofAreaM2 <= 30:
		sel.Solar = "Starter"
	case u.RoofAreaM2 <= 45:
		sel.Solar = "Essential"
	default:
		sel.Solar = "Performance"
	}

	return sel
}
