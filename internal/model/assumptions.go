package model

// FinancialAssumptions holds every editable financial input of a simulation.
// All rates are fractions (0.049 = 4.9%), never percentages.
type FinancialAssumptions struct {
	InterestRate  float64 `yaml:"interest_rate" json:"interest_rate"`
	LoanTermYears int     `yaml:"loan_term_years" json:"loan_term_years"`

	Installation InstallationCost `yaml:"installation" json:"installation"`
	Maintenance  MaintenanceTable `yaml:"maintenance" json:"maintenance"`

	BatteryDegradationRate  float64 `yaml:"battery_degradation_rate" json:"battery_degradation_rate"`
	SolarDegradationRate    float64 `yaml:"solar_degradation_rate" json:"solar_degradation_rate"`
	VehicleDepreciationRate float64 `yaml:"vehicle_depreciation_rate" json:"vehicle_depreciation_rate"`

	PowerBillInflation    float64 `yaml:"power_bill_inflation" json:"power_bill_inflation"`
	FuelInflation         float64 `yaml:"fuel_inflation" json:"fuel_inflation"`
	VehiclePriceInflation float64 `yaml:"vehicle_price_inflation" json:"vehicle_price_inflation"`

	BatteryRebateRate float64 `yaml:"battery_rebate_rate" json:"battery_rebate_rate"`
	SolarRebateRate   float64 `yaml:"solar_rebate_rate" json:"solar_rebate_rate"`

	// Fraction of the current power bill / fuel spend the package removes.
	PowerBillReduction float64 `yaml:"power_bill_reduction" json:"power_bill_reduction"`
	FuelCostReduction  float64 `yaml:"fuel_cost_reduction" json:"fuel_cost_reduction"`

	// ChargingTariff is the $/kWh paid to charge the EV at home.
	ChargingTariff float64 `yaml:"charging_tariff" json:"charging_tariff"`

	// VehicleReplacementYears replaces a loan-financed vehicle every N years (0 = never).
	// Ignored when Lease is set; leases renew every Lease.TermYears instead.
	VehicleReplacementYears int `yaml:"vehicle_replacement_years" json:"vehicle_replacement_years"`

	Lease *LeaseTerms `yaml:"lease,omitempty" json:"lease,omitempty"`
}

// InstallationCost is a base + per-unit formula for each installed asset.
type InstallationCost struct {
	BatteryBase   float64 `yaml:"battery_base" json:"battery_base"`
	BatteryPerKWh float64 `yaml:"battery_per_kwh" json:"battery_per_kwh"`
	SolarBase     float64 `yaml:"solar_base" json:"solar_base"`
	SolarPerKW    float64 `yaml:"solar_per_kw" json:"solar_per_kw"`
}

func (c InstallationCost) Battery(capacityKWh float64) float64 {
	if capacityKWh <= 0 {
		return 0
	}
	return c.BatteryBase + c.BatteryPerKWh*capacityKWh
}

func (c InstallationCost) Solar(capacityKW float64) float64 {
	if capacityKW <= 0 {
		return 0
	}
	return c.SolarBase + c.SolarPerKW*capacityKW
}

// MaintenanceItem is a cost incurred once every EveryYears years.
type MaintenanceItem struct {
	Cost       float64 `yaml:"cost" json:"cost"`
	EveryYears float64 `yaml:"every_years" json:"every_years"`
}

// Monthly spreads the item evenly over the months of its interval.
func (m MaintenanceItem) Monthly() float64 {
	if m.EveryYears <= 0 {
		return 0
	}
	return m.Cost / (m.EveryYears * 12)
}

func (m MaintenanceItem) validate(field string) error {
	if err := firstErr(
		nonNegative(field+".cost", m.Cost),
		nonNegative(field+".every_years", m.EveryYears),
	); err != nil {
		return err
	}
	if m.Cost > 0 && m.EveryYears == 0 {
		return Invalid(field+".every_years", "must be > 0 when cost is set")
	}
	return nil
}

// MaintenanceTable is the fixed set of recurring maintenance items.
type MaintenanceTable struct {
	VehicleService      MaintenanceItem `yaml:"vehicle_service" json:"vehicle_service"`
	Tyres               MaintenanceItem `yaml:"tyres" json:"tyres"`
	BatteryService      MaintenanceItem `yaml:"battery_service" json:"battery_service"`
	SolarCleaning       MaintenanceItem `yaml:"solar_cleaning" json:"solar_cleaning"`
	InverterReplacement MaintenanceItem `yaml:"inverter_replacement" json:"inverter_replacement"`
}

func (t MaintenanceTable) Validate() error {
	return firstErr(
		t.VehicleService.validate("maintenance.vehicle_service"),
		t.Tyres.validate("maintenance.tyres"),
		t.BatteryService.validate("maintenance.battery_service"),
		t.SolarCleaning.validate("maintenance.solar_cleaning"),
		t.InverterReplacement.validate("maintenance.inverter_replacement"),
	)
}

// LeaseTerms switch vehicle financing from a loan to a renewing lease.
type LeaseTerms struct {
	TermYears          int     `yaml:"term_years" json:"term_years"`
	Rate               float64 `yaml:"rate" json:"rate"`
	ResidualPercentage float64 `yaml:"residual_percentage" json:"residual_percentage"`
	// TaxBenefitRate is the fraction of each lease payment returned as a salary-packaging benefit.
	TaxBenefitRate float64 `yaml:"tax_benefit_rate" json:"tax_benefit_rate"`
}

func (l LeaseTerms) Validate() error {
	if l.TermYears <= 0 {
		return Invalid("lease.term_years", "must be > 0")
	}
	if l.ResidualPercentage >= 1 {
		return Invalid("lease.residual_percentage", "must be < 1")
	}
	return firstErr(
		fraction("lease.rate", l.Rate),
		fraction("lease.residual_percentage", l.ResidualPercentage),
		fraction("lease.tax_benefit_rate", l.TaxBenefitRate),
	)
}

func (a FinancialAssumptions) Validate() error {
	if a.LoanTermYears <= 0 {
		return Invalid("assumptions.loan_term_years", "must be > 0")
	}
	if a.VehicleReplacementYears < 0 {
		return Invalid("assumptions.vehicle_replacement_years", "must be >= 0")
	}
	if err := firstErr(
		fraction("assumptions.interest_rate", a.InterestRate),
		nonNegative("installation.battery_base", a.Installation.BatteryBase),
		nonNegative("installation.battery_per_kwh", a.Installation.BatteryPerKWh),
		nonNegative("installation.solar_base", a.Installation.SolarBase),
		nonNegative("installation.solar_per_kw", a.Installation.SolarPerKW),
		a.Maintenance.Validate(),
		fraction("assumptions.battery_degradation_rate", a.BatteryDegradationRate),
		fraction("assumptions.solar_degradation_rate", a.SolarDegradationRate),
		fraction("assumptions.vehicle_depreciation_rate", a.VehicleDepreciationRate),
		nonNegative("assumptions.power_bill_inflation", a.PowerBillInflation),
		nonNegative("assumptions.fuel_inflation", a.FuelInflation),
		nonNegative("assumptions.vehicle_price_inflation", a.VehiclePriceInflation),
		fraction("assumptions.battery_rebate_rate", a.BatteryRebateRate),
		fraction("assumptions.solar_rebate_rate", a.SolarRebateRate),
		fraction("assumptions.power_bill_reduction", a.PowerBillReduction),
		fraction("assumptions.fuel_cost_reduction", a.FuelCostReduction),
		nonNegative("assumptions.charging_tariff", a.ChargingTariff),
	); err != nil {
		return err
	}
	if a.Lease != nil {
		return a.Lease.Validate()
	}
	return nil
}

// DefaultAssumptions returns the assumption set used when a scenario leaves fields unset.
func DefaultAssumptions() FinancialAssumptions {
	return FinancialAssumptions{
		InterestRate:  0.049,
		LoanTermYears: 5,
		Installation: InstallationCost{
			BatteryBase:   1500,
			BatteryPerKWh: 100,
			SolarBase:     2000,
			SolarPerKW:    300,
		},
		Maintenance: MaintenanceTable{
			VehicleService:      MaintenanceItem{Cost: 300, EveryYears: 1},
			Tyres:               MaintenanceItem{Cost: 900, EveryYears: 4},
			BatteryService:      MaintenanceItem{Cost: 200, EveryYears: 2},
			SolarCleaning:       MaintenanceItem{Cost: 150, EveryYears: 1},
			InverterReplacement: MaintenanceItem{Cost: 2500, EveryYears: 10},
		},
		BatteryDegradationRate:  0.02,
		SolarDegradationRate:    0.005,
		VehicleDepreciationRate: 0.15,
		PowerBillInflation:      0.03,
		FuelInflation:           0.04,
		VehiclePriceInflation:   0.02,
		BatteryRebateRate:       0.30,
		SolarRebateRate:         0.20,
		PowerBillReduction:      0.80,
		FuelCostReduction:       0.90,
		ChargingTariff:          0.08,
	}
}
