package revenue

// Assets are the (already degraded) capacities a model prices for one month.
type Assets struct {
	BatteryKWh float64
	SolarKW    float64
	// EVBatteryKWh is the capacity available for vehicle-to-grid export; 0 when the EV can't export.
	EVBatteryKWh float64
}

// Estimate is one month of expected revenue, split by stream.
type Estimate struct {
	Arbitrage      float64 `json:"arbitrage"`
	Ancillary      float64 `json:"ancillary"`
	DemandResponse float64 `json:"demand_response"`
	SolarExport    float64 `json:"solar_export"`
	VehicleToGrid  float64 `json:"vehicle_to_grid"`
}

// Market is the revenue earned on the wholesale/grid-services market,
// which the provider shares in. Solar export is paid directly to the household.
func (e Estimate) Market() float64 {
	return e.Arbitrage + e.Ancillary + e.DemandResponse + e.VehicleToGrid
}

func (e Estimate) Total() float64 {
	return e.Market() + e.SolarExport
}

// Model is a pluggable revenue estimation strategy. Implementations are pure
// and return 0 for zero or negative capacity.
type Model interface {
	Name() string
	Validate() error

	MonthlyArbitrage(capacityKWh float64) float64
	MonthlyFCASRevenue(capacityKWh float64) float64
	MonthlyDemandResponseRevenue(capacityKWh float64) float64

	Estimate(a Assets) Estimate
}

// FeedIn prices energy exported to the grid from solar and from a V2G-capable vehicle.
// A zero Tariff disables both streams.
type FeedIn struct {
	Tariff         float64 `yaml:"tariff" json:"tariff"`
	OutputFactor   float64 `yaml:"output_factor" json:"output_factor"`
	SunHoursPerDay float64 `yaml:"sun_hours_per_day" json:"sun_hours_per_day"`
	// V2GExportFraction is the share of the EV battery exported per day.
	V2GExportFraction float64 `yaml:"v2g_export_fraction" json:"v2g_export_fraction"`
}

func DefaultFeedIn() FeedIn {
	return FeedIn{
		Tariff:            0.05,
		OutputFactor:      0.4,
		SunHoursPerDay:    4.5,
		V2GExportFraction: 0.1,
	}
}

func (f FeedIn) SolarExport(solarKW, daysPerMonth float64) float64 {
	if solarKW <= 0 {
		return 0
	}
	return solarKW * f.OutputFactor * f.SunHoursPerDay * daysPerMonth * f.Tariff
}

func (f FeedIn) VehicleToGrid(evKWh, daysPerMonth float64) float64 {
	if evKWh <= 0 {
		return 0
	}
	return f.Tariff * evKWh * f.V2GExportFraction * daysPerMonth
}

func (f FeedIn) validate() error {
	return firstErr(
		nonNegative("revenue.feed_in.tariff", f.Tariff),
		fraction("revenue.feed_in.output_factor", f.OutputFactor),
		nonNegative("revenue.feed_in.sun_hours_per_day", f.SunHoursPerDay),
		fraction("revenue.feed_in.v2g_export_fraction", f.V2GExportFraction),
	)
}

// estimate combines a model's battery streams with the shared feed-in streams.
func estimate(m Model, feed FeedIn, daysPerMonth float64, a Assets) Estimate {
	return Estimate{
		Arbitrage:      m.MonthlyArbitrage(a.BatteryKWh),
		Ancillary:      m.MonthlyFCASRevenue(a.BatteryKWh),
		DemandResponse: m.MonthlyDemandResponseRevenue(a.BatteryKWh),
		SolarExport:    feed.SolarExport(a.SolarKW, daysPerMonth),
		VehicleToGrid:  feed.VehicleToGrid(a.EVBatteryKWh, daysPerMonth),
	}
}
