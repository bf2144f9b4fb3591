package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"energy-package-roi/internal/analysis"
	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	maxVariations  = 100
	compareWorkers = 4
)

// SimulationHandler handles simulation requests
type SimulationHandler struct {
	runner *Runner
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(runner *Runner) *SimulationHandler {
	return &SimulationHandler{runner: runner}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	body, hit, err := h.runner.RunJSON(c.Request.Context(), req.Scenario, req.Options)
	if err != nil {
		writeError(c, "SimulationHandler", err)
		return
	}
	writeCached(c, body, hit)
}

// Compare handles POST /api/v1/simulate/compare
func (h *SimulationHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	variations := req.Variations
	if len(variations) == 0 && req.AllCombinations {
		for _, sel := range h.runner.Catalog().Combinations() {
			sel := sel
			variations = append(variations, models.Variation{Name: sel.String(), Packages: &sel})
		}
	}
	if len(variations) == 0 {
		badRequest(c, fmt.Errorf("at least one variation is required, or set all_combinations"))
		return
	}
	if len(variations) > maxVariations {
		badRequest(c, fmt.Errorf("at most %d variations are allowed, got %d", maxVariations, len(variations)))
		return
	}
	seen := make(map[string]bool, len(variations))
	for _, v := range variations {
		if seen[v.Name] {
			badRequest(c, fmt.Errorf("duplicate variation name %q", v.Name))
			return
		}
		seen[v.Name] = true
	}

	log.Printf("SimulationHandler: comparing %d variations", len(variations))
	summaries, errs, err := h.compare(c.Request.Context(), req.Base, variations)
	if err != nil {
		writeError(c, "SimulationHandler", err)
		return
	}

	byName := make(map[string]analysis.Summary, len(variations))
	resp := models.CompareResponse{}
	for i, v := range variations {
		if errs[i] != nil {
			_, detail := errorDetail(errs[i])
			resp.Failed = append(resp.Failed, models.VariationError{Name: v.Name, Error: detail})
			continue
		}
		byName[v.Name] = summaries[i]
	}
	resp.Rankings = analysis.RankScenarios(byName)
	c.JSON(http.StatusOK, resp)
}

// compare runs every variation concurrently. A variation that fails to
// simulate is reported in errs; only cancellation fails the whole batch.
func (h *SimulationHandler) compare(ctx context.Context, base config.Config, variations []models.Variation) ([]analysis.Summary, []error, error) {
	summaries := make([]analysis.Summary, len(variations))
	errs := make([]error, len(variations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(compareWorkers)
	for i, v := range variations {
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := h.runner.Run(applyVariation(base, v), models.SimulateOptions{})
			if err != nil {
				errs[i] = err
				return nil
			}
			summaries[i] = resp.Summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return summaries, errs, nil
}

func applyVariation(base config.Config, v models.Variation) config.Config {
	cfg := base
	cfg.Name = v.Name
	if v.Packages != nil {
		cfg.Packages = *v.Packages
	}
	if v.Usage != nil {
		cfg.Usage = *v.Usage
	}
	if v.Assumptions != nil {
		cfg.Assumptions = config.MergeAssumptions(base.Assumptions, *v.Assumptions)
	}
	if v.Revenue != nil {
		cfg.Revenue = *v.Revenue
	}
	if v.HorizonYears != 0 {
		cfg.HorizonYears = v.HorizonYears
	}
	return cfg
}

func writeCached(c *gin.Context, body []byte, hit bool) {
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
