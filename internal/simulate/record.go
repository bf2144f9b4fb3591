package simulate

import (
	"cloud.google.com/go/civil"

	"energy-package-roi/internal/finance"
)

// Component is one labeled, unsigned line of a breakdown.
type Component struct {
	Label  string
	Amount float64
}

// CostBreakdown is one month of outgoings. All amounts are >= 0.
type CostBreakdown struct {
	BundleLoan     float64 `json:"bundle_loan"`
	VehicleFinance float64 `json:"vehicle_finance"`
	Charging       float64 `json:"charging"`
	ProviderShare  float64 `json:"provider_share"`

	VehicleService      float64 `json:"vehicle_service"`
	Tyres               float64 `json:"tyres"`
	BatteryService      float64 `json:"battery_service"`
	SolarCleaning       float64 `json:"solar_cleaning"`
	InverterReplacement float64 `json:"inverter_replacement"`
}

// Components lists the cost lines in presentation order.
func (c CostBreakdown) Components() []Component {
	return []Component{
		{"Bundle loan", c.BundleLoan},
		{"Vehicle finance", c.VehicleFinance},
		{"EV charging", c.Charging},
		{"Provider revenue share", c.ProviderShare},
		{"Vehicle service", c.VehicleService},
		{"Tyres", c.Tyres},
		{"Battery service", c.BatteryService},
		{"Solar cleaning", c.SolarCleaning},
		{"Inverter replacement", c.InverterReplacement},
	}
}

func (c CostBreakdown) Maintenance() float64 {
	return c.VehicleService + c.Tyres + c.BatteryService + c.SolarCleaning + c.InverterReplacement
}

// Total sums the components in Components order.
func (c CostBreakdown) Total() float64 {
	return sumComponents(c.Components())
}

func (c CostBreakdown) Add(o CostBreakdown) CostBreakdown {
	return CostBreakdown{
		BundleLoan:          c.BundleLoan + o.BundleLoan,
		VehicleFinance:      c.VehicleFinance + o.VehicleFinance,
		Charging:            c.Charging + o.Charging,
		ProviderShare:       c.ProviderShare + o.ProviderShare,
		VehicleService:      c.VehicleService + o.VehicleService,
		Tyres:               c.Tyres + o.Tyres,
		BatteryService:      c.BatteryService + o.BatteryService,
		SolarCleaning:       c.SolarCleaning + o.SolarCleaning,
		InverterReplacement: c.InverterReplacement + o.InverterReplacement,
	}
}

// BenefitBreakdown is one month of revenue and savings.
type BenefitBreakdown struct {
	Arbitrage      float64 `json:"arbitrage"`
	Ancillary      float64 `json:"ancillary"`
	DemandResponse float64 `json:"demand_response"`
	SolarExport    float64 `json:"solar_export"`
	VehicleToGrid  float64 `json:"vehicle_to_grid"`

	PowerBillSavings float64 `json:"power_bill_savings"`
	FuelSavings      float64 `json:"fuel_savings"`
	LeaseTaxBenefit  float64 `json:"lease_tax_benefit"`
}

func (b BenefitBreakdown) Components() []Component {
	return []Component{
		{"Arbitrage", b.Arbitrage},
		{"Ancillary services", b.Ancillary},
		{"Demand response", b.DemandResponse},
		{"Solar export", b.SolarExport},
		{"Vehicle to grid", b.VehicleToGrid},
		{"Power bill savings", b.PowerBillSavings},
		{"Fuel savings", b.FuelSavings},
		{"Lease tax benefit", b.LeaseTaxBenefit},
	}
}

func (b BenefitBreakdown) Total() float64 {
	return sumComponents(b.Components())
}

func (b BenefitBreakdown) Add(o BenefitBreakdown) BenefitBreakdown {
	return BenefitBreakdown{
		Arbitrage:        b.Arbitrage + o.Arbitrage,
		Ancillary:        b.Ancillary + o.Ancillary,
		DemandResponse:   b.DemandResponse + o.DemandResponse,
		SolarExport:      b.SolarExport + o.SolarExport,
		VehicleToGrid:    b.VehicleToGrid + o.VehicleToGrid,
		PowerBillSavings: b.PowerBillSavings + o.PowerBillSavings,
		FuelSavings:      b.FuelSavings + o.FuelSavings,
		LeaseTaxBenefit:  b.LeaseTaxBenefit + o.LeaseTaxBenefit,
	}
}

func sumComponents(cs []Component) float64 {
	total := 0.0
	for _, c := range cs {
		total += c.Amount
	}
	return total
}

// AssetHealth is each asset's retention as a percentage of new.
type AssetHealth struct {
	BatteryPct      float64 `json:"battery_pct"`
	SolarPct        float64 `json:"solar_pct"`
	VehicleValuePct float64 `json:"vehicle_value_pct"`
}

// MonthlyRecord is one month of the simulated trajectory.
// NetPosition is always Benefits.Total() - Costs.Total().
type MonthlyRecord struct {
	Month int `json:"month"`
	// Year is the elapsed fractional year, Month/12.
	Year float64 `json:"year"`
	// Period is the calendar month, set only when the run has a start date.
	Period *civil.Date `json:"period,omitempty"`

	Costs    CostBreakdown    `json:"costs"`
	Benefits BenefitBreakdown `json:"benefits"`
	Health   AssetHealth      `json:"health"`

	NetPosition float64     `json:"net_position"`
	Events      []EventKind `json:"events,omitempty"`
}

// VehicleSpan is one vehicle financing period, from its start month until the next event.
type VehicleSpan struct {
	StartMonth    int               `json:"start_month"`
	Kind          EventKind         `json:"kind"`
	AssetValue    float64           `json:"asset_value"`
	// TradeInCredit is negative when the previous vehicle was worth less
	// than was still owed on it.
	TradeInCredit float64           `json:"trade_in_credit"`
	Financed      float64           `json:"financed"`
	Payment       float64           `json:"payment"`
	Lease         *finance.Lease    `json:"lease,omitempty"`
	Loan          *finance.Schedule `json:"loan,omitempty"`
}

// Result is a complete simulation: every month plus the schedules that produced it.
type Result struct {
	Records []MonthlyRecord `json:"records"`
	Events  EventSchedule   `json:"events"`

	// UpfrontCost is the package price including installation, net of rebates.
	UpfrontCost  float64           `json:"upfront_cost"`
	BundleLoan   *finance.Schedule `json:"bundle_loan,omitempty"`
	VehicleSpans []VehicleSpan     `json:"vehicle_spans,omitempty"`
	RevenueModel string            `json:"revenue_model"`
}
