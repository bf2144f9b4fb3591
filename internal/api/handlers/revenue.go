package handlers

import (
	"net/http"

	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"

	"github.com/gin-gonic/gin"
)

var modelDescriptions = map[string]string{
	"spread":   "Fixed tariff spread. Charges the battery off-peak and discharges at peak once a day.",
	"seasonal": "Probabilistic seasonal price buckets plus frequency control (FCAS) and demand response income.",
}

// RevenueHandler exposes the revenue models on their own
type RevenueHandler struct{}

// NewRevenueHandler creates a new revenue handler
func NewRevenueHandler() *RevenueHandler {
	return &RevenueHandler{}
}

// Estimates handles GET /api/v1/estimates
func (h *RevenueHandler) Estimates(c *gin.Context) {
	var q models.EstimateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"battery_kwh", q.BatteryKWh},
		{"solar_kw", q.SolarKW},
		{"ev_kwh", q.EVBatteryKWh},
	} {
		if f.v < 0 {
			writeError(c, "RevenueHandler", model.Invalid(f.name, "must be >= 0"))
			return
		}
	}

	names := revenue.Names()
	if q.Model != "" {
		names = []string{q.Model}
	}
	assets := revenue.Assets{BatteryKWh: q.BatteryKWh, SolarKW: q.SolarKW, EVBatteryKWh: q.EVBatteryKWh}

	resp := models.EstimateResponse{Assets: assets}
	for _, name := range names {
		m, err := revenue.FromConfig(revenue.Config{Name: name})
		if err != nil {
			writeError(c, "RevenueHandler", err)
			return
		}
		est := m.Estimate(assets)
		resp.Estimates = append(resp.Estimates, models.ModelEstimate{
			Model:    m.Name(),
			Estimate: est,
			Market:   est.Market(),
			Total:    est.Total(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ListModels handles GET /api/v1/revenue-models
func (h *RevenueHandler) ListModels(c *gin.Context) {
	out := make([]models.RevenueModelInfo, 0, len(revenue.Names()))
	for _, name := range revenue.Names() {
		m, err := revenue.FromConfig(revenue.Config{Name: name})
		if err != nil {
			writeError(c, "RevenueHandler", err)
			return
		}
		out = append(out, models.RevenueModelInfo{
			Name:        name,
			Description: modelDescriptions[name],
			Defaults:    m,
		})
	}
	c.JSON(http.StatusOK, gin.H{"models": out})
}

// PricePatterns handles GET /api/v1/price-patterns
func (h *RevenueHandler) PricePatterns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"buckets": revenue.DefaultSeasonal().PriceSummary()})
}
