package models

import (
	"time"

	"energy-package-roi/internal/analysis"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/config"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"
	"energy-package-roi/internal/simulate"
)

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Name         string                    `json:"name,omitempty"`
	Packages     catalog.Selection         `json:"packages"`
	RevenueModel string                    `json:"revenue_model"`
	Summary      analysis.Summary          `json:"summary"`
	Events       simulate.EventSchedule    `json:"events"`
	Waterfall    []analysis.WaterfallEntry `json:"waterfall"`
	Annual       []analysis.AnnualSummary  `json:"annual,omitempty"`
	Records      []simulate.MonthlyRecord  `json:"records,omitempty"`
}

// CompareResponse ranks the variations that ran successfully
type CompareResponse struct {
	Rankings []analysis.RankedScenario `json:"rankings"`
	Failed   []VariationError          `json:"failed,omitempty"`
}

// VariationError reports a variation that could not be simulated
type VariationError struct {
	Name  string      `json:"name"`
	Error ErrorDetail `json:"error"`
}

// EstimateResponse lists monthly revenue per model for one set of assets
type EstimateResponse struct {
	Assets    revenue.Assets  `json:"assets"`
	Estimates []ModelEstimate `json:"estimates"`
}

// ModelEstimate is one model's monthly revenue breakdown
type ModelEstimate struct {
	Model    string           `json:"model"`
	Estimate revenue.Estimate `json:"estimate"`
	Market   float64          `json:"market"`
	Total    float64          `json:"total"`
}

// RevenueModelInfo describes a selectable revenue model
type RevenueModelInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Defaults    revenue.Model `json:"defaults"`
}

// RecommendResponse carries the recommended selection and its packages
type RecommendResponse struct {
	Selection catalog.Selection `json:"selection"`
	EV        model.EVSpec      `json:"ev"`
	Battery   model.BatterySpec `json:"battery"`
	Solar     model.SolarSpec   `json:"solar"`
}

// ScenarioInfo is a stored scenario as returned by the API
type ScenarioInfo struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Scenario  config.Config `json:"scenario"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
