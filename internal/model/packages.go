package model

// EVSpec is a catalog entry for an electric vehicle package.
// Units:
// - BatteryCapacityKWh: kWh
// - RangeKm: km
// - ChargingPowerKW: kW (AC home charging)
// - Price: whole dollars
// - ProfitShare: fraction 0..1 of market revenue kept by the provider
// - ConsumptionKWhPerKm: kWh per km driven
type EVSpec struct {
	Name                string   `yaml:"name" json:"name"`
	Model               string   `yaml:"model" json:"model"`
	BatteryCapacityKWh  float64  `yaml:"battery_capacity_kwh" json:"battery_capacity_kwh"`
	RangeKm             int      `yaml:"range_km" json:"range_km"`
	ChargingPowerKW     float64  `yaml:"charging_power_kw" json:"charging_power_kw"`
	V2GCapable          bool     `yaml:"v2g_capable" json:"v2g_capable"`
	Price               float64  `yaml:"price" json:"price"`
	ProfitShare         float64  `yaml:"profit_share" json:"profit_share"`
	ConsumptionKWhPerKm float64  `yaml:"consumption_kwh_per_km" json:"consumption_kwh_per_km"`
	Features            []string `yaml:"features" json:"features"`
}

func (s EVSpec) Validate() error {
	if s.RangeKm < 0 {
		return Invalid("ev.range_km", "must be >= 0")
	}
	return firstErr(
		nonNegative("ev.battery_capacity_kwh", s.BatteryCapacityKWh),
		nonNegative("ev.charging_power_kw", s.ChargingPowerKW),
		nonNegative("ev.price", s.Price),
		fraction("ev.profit_share", s.ProfitShare),
		nonNegative("ev.consumption_kwh_per_km", s.ConsumptionKWhPerKm),
	)
}

// BatterySpec is a catalog entry for a home battery package.
// GridShare is the fraction of capacity the provider reserves for grid services;
// it is informational and does not scale revenue.
type BatterySpec struct {
	Name          string   `yaml:"name" json:"name"`
	CapacityKWh   float64  `yaml:"capacity_kwh" json:"capacity_kwh"`
	PeakPowerKW   float64  `yaml:"peak_power_kw" json:"peak_power_kw"`
	Cycles        int      `yaml:"cycles" json:"cycles"`
	WarrantyYears int      `yaml:"warranty_years" json:"warranty_years"`
	Price         float64  `yaml:"price" json:"price"`
	ProfitShare   float64  `yaml:"profit_share" json:"profit_share"`
	GridShare     float64  `yaml:"grid_share" json:"grid_share"`
	Features      []string `yaml:"features" json:"features"`
}

func (s BatterySpec) Validate() error {
	if s.Cycles < 0 {
		return Invalid("battery.cycles", "must be >= 0")
	}
	if s.WarrantyYears < 0 {
		return Invalid("battery.warranty_years", "must be >= 0")
	}
	return firstErr(
		nonNegative("battery.capacity_kwh", s.CapacityKWh),
		nonNegative("battery.peak_power_kw", s.PeakPowerKW),
		nonNegative("battery.price", s.Price),
		fraction("battery.profit_share", s.ProfitShare),
		fraction("battery.grid_share", s.GridShare),
	)
}

// SolarSpec is a catalog entry for a rooftop solar package.
type SolarSpec struct {
	Name           string   `yaml:"name" json:"name"`
	CapacityKW     float64  `yaml:"capacity_kw" json:"capacity_kw"`
	PanelCount     int      `yaml:"panel_count" json:"panel_count"`
	PanelPowerW    int      `yaml:"panel_power_w" json:"panel_power_w"`
	InverterSizeKW float64  `yaml:"inverter_size_kw" json:"inverter_size_kw"`
	Price          float64  `yaml:"price" json:"price"`
	WarrantyYears  int      `yaml:"warranty_years" json:"warranty_years"`
	Features       []string `yaml:"features" json:"features"`
}

func (s SolarSpec) Validate() error {
	if s.PanelCount < 0 || s.PanelPowerW < 0 {
		return Invalid("solar.panel_count/panel_power_w", "must be >= 0")
	}
	if s.WarrantyYears < 0 {
		return Invalid("solar.warranty_years", "must be >= 0")
	}
	return firstErr(
		nonNegative("solar.capacity_kw", s.CapacityKW),
		nonNegative("solar.inverter_size_kw", s.InverterSizeKW),
		nonNegative("solar.price", s.Price),
	)
}

// UsageProfile describes the household the package is sized for.
type UsageProfile struct {
	DailyCommuteKm   float64 `yaml:"daily_commute_km" json:"daily_commute_km"`
	MonthlyPowerBill float64 `yaml:"monthly_power_bill" json:"monthly_power_bill"`
	MonthlyFuelCost  float64 `yaml:"monthly_fuel_cost" json:"monthly_fuel_cost"`
	RoofAreaM2       float64 `yaml:"roof_area_m2" json:"roof_area_m2"`
}

func (u UsageProfile) Validate() error {
	return firstErr(
		nonNegative("usage.daily_commute_km", u.DailyCommuteKm),
		nonNegative("usage.monthly_power_bill", u.MonthlyPowerBill),
		nonNegative("usage.monthly_fuel_cost", u.MonthlyFuelCost),
		nonNegative("usage.roof_area_m2", u.RoofAreaM2),
	)
}
