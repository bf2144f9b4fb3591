package handlers

import (
	"log"
	"net/http"

	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/model"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the package range
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &CatalogHandler{catalog: cat}
}

// ListPackages handles GET /api/v1/packages
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	log.Printf("CatalogHandler: returning %d EV, %d battery, %d solar packages",
		len(h.catalog.EVs), len(h.catalog.Batteries), len(h.catalog.Solar))
	c.JSON(http.StatusOK, h.catalog)
}

// Recommend handles GET /api/v1/recommend
func (h *CatalogHandler) Recommend(c *gin.Context) {
	var q models.RecommendQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	usage := model.UsageProfile{
		DailyCommuteKm:   q.DailyCommuteKm,
		MonthlyPowerBill: q.MonthlyPowerBill,
		RoofAreaM2:       q.RoofAreaM2,
	}
	if err := usage.Validate(); err != nil {
		writeError(c, "CatalogHandler", err)
		return
	}

	sel := catalog.Recommend(usage)
	ev, batt, solar, err := h.catalog.Resolve(sel)
	if err != nil {
		writeError(c, "CatalogHandler", err)
		return
	}
	c.JSON(http.StatusOK, models.RecommendResponse{
		Selection: sel,
		EV:        ev,
		Battery:   batt,
		Solar:     solar,
	})
}
