package config

import "energy-package-roi/internal/model"

// MergeAssumptions overlays non-zero fields from override onto base.
// A zero in override means "keep base", so a rate cannot be overridden to exactly 0
// here; set it on the returned value instead.
func MergeAssumptions(base, override model.FinancialAssumptions) model.FinancialAssumptions {
	out := base
	setF(&out.InterestRate, override.InterestRate)
	if override.LoanTermYears != 0 {
		out.LoanTermYears = override.LoanTermYears
	}

	setF(&out.Installation.BatteryBase, override.Installation.BatteryBase)
	setF(&out.Installation.BatteryPerKWh, override.Installation.BatteryPerKWh)
	setF(&out.Installation.SolarBase, override.Installation.SolarBase)
	setF(&out.Installation.SolarPerKW, override.Installation.SolarPerKW)

	mergeItem(&out.Maintenance.VehicleService, override.Maintenance.VehicleService)
	mergeItem(&out.Maintenance.Tyres, override.Maintenance.Tyres)
	mergeItem(&out.Maintenance.BatteryService, override.Maintenance.BatteryService)
	mergeItem(&out.Maintenance.SolarCleaning, override.Maintenance.SolarCleaning)
	mergeItem(&out.Maintenance.InverterReplacement, override.Maintenance.InverterReplacement)

	setF(&out.BatteryDegradationRate, override.BatteryDegradationRate)
	setF(&out.SolarDegradationRate, override.SolarDegradationRate)
	setF(&out.VehicleDepreciationRate, override.VehicleDepreciationRate)
	setF(&out.PowerBillInflation, override.PowerBillInflation)
	setF(&out.FuelInflation, override.FuelInflation)
	setF(&out.VehiclePriceInflation, override.VehiclePriceInflation)
	setF(&out.BatteryRebateRate, override.BatteryRebateRate)
	setF(&out.SolarRebateRate, override.SolarRebateRate)
	setF(&out.PowerBillReduction, override.PowerBillReduction)
	setF(&out.FuelCostReduction, override.FuelCostReduction)
	setF(&out.ChargingTariff, override.ChargingTariff)

	if override.VehicleReplacementYears != 0 {
		out.VehicleReplacementYears = override.VehicleReplacementYears
	}
	if override.Lease != nil {
		lease := *override.Lease
		out.Lease = &lease
	}
	return out
}

func setF(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func mergeItem(dst *model.MaintenanceItem, o model.MaintenanceItem) {
	setF(&dst.Cost, o.Cost)
	setF(&dst.EveryYears, o.EveryYears)
}
