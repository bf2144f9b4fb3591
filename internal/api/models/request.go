package models

import (
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/config"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"
)

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	Scenario config.Config   `json:"scenario"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions selects which optional sections the response carries
type SimulateOptions struct {
	IncludeRecords bool `json:"include_records,omitempty"`
	IncludeAnnual  bool `json:"include_annual,omitempty"`
	// WaterfallMonth is the 0-based month the waterfall breaks down.
	WaterfallMonth int `json:"waterfall_month,omitempty"`
}

// CompareRequest runs several variations of a base scenario
type CompareRequest struct {
	Base       config.Config `json:"base"`
	Variations []Variation   `json:"variations,omitempty"`
	// AllCombinations ranks every package combination in the catalog when
	// no variations are given.
	AllCombinations bool `json:"all_combinations,omitempty"`
}

// Variation overrides parts of the base scenario. Nil fields keep the base.
type Variation struct {
	Name         string                      `json:"name" binding:"required"`
	Packages     *catalog.Selection          `json:"packages,omitempty"`
	Usage        *model.UsageProfile         `json:"usage,omitempty"`
	Assumptions  *model.FinancialAssumptions `json:"assumptions,omitempty"`
	Revenue      *revenue.Config             `json:"revenue,omitempty"`
	HorizonYears int                         `json:"horizon_years,omitempty"`
}

// EstimateQuery is the query string of GET /estimates
type EstimateQuery struct {
	BatteryKWh   float64 `form:"battery_kwh"`
	SolarKW      float64 `form:"solar_kw"`
	EVBatteryKWh float64 `form:"ev_kwh"`
	Model        string  `form:"model"`
}

// RecommendQuery is the query string of GET /recommend
type RecommendQuery struct {
	DailyCommuteKm   float64 `form:"daily_commute_km"`
	MonthlyPowerBill float64 `form:"monthly_power_bill"`
	RoofAreaM2       float64 `form:"roof_area_m2"`
}

// SaveScenarioRequest creates or replaces a stored scenario
type SaveScenarioRequest struct {
	Name     string        `json:"name" binding:"required"`
	Scenario config.Config `json:"scenario"`
}
