package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"energy-package-roi/internal/analysis"
	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/cache"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/config"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/simulate"
)

// Runner turns a scenario into a simulation response. Responses are cached by
// scenario and options; the cache is optional.
type Runner struct {
	catalog *catalog.Catalog
	cache   cache.Cache
	engine  *simulate.Engine
}

func NewRunner(cat *catalog.Catalog, c cache.Cache) *Runner {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Runner{catalog: cat, cache: c, engine: simulate.New()}
}

func (r *Runner) Catalog() *catalog.Catalog { return r.catalog }

// Inputs resolves cfg against the server catalog. Scenario files may name a
// catalog file; API callers may not.
func (r *Runner) Inputs(cfg config.Config) (simulate.Inputs, error) {
	if cfg.CatalogFile != "" {
		return simulate.Inputs{}, model.Invalid("scenario.catalog_file", "is not accepted over the API")
	}
	in, err := cfg.Inputs(r.catalog)
	if err != nil {
		return simulate.Inputs{}, err
	}
	if err := in.Validate(); err != nil {
		return simulate.Inputs{}, err
	}
	return in, nil
}

func (r *Runner) Run(cfg config.Config, opts models.SimulateOptions) (*models.SimulateResponse, error) {
	in, err := r.Inputs(cfg)
	if err != nil {
		return nil, err
	}
	res, err := r.engine.Run(in)
	if err != nil {
		return nil, err
	}
	if opts.WaterfallMonth < 0 || opts.WaterfallMonth >= len(res.Records) {
		return nil, model.Invalid("options.waterfall_month", fmt.Sprintf("must be in [0, %d)", len(res.Records)))
	}

	resp := &models.SimulateResponse{
		Name:         cfg.Name,
		Packages:     cfg.Packages,
		RevenueModel: res.RevenueModel,
		Summary:      analysis.SummarizeResult(res),
		Events:       res.Events,
		Waterfall:    analysis.Waterfall(res.Records[opts.WaterfallMonth]),
	}
	if opts.IncludeAnnual {
		resp.Annual = analysis.AnnualRollup(res.Records)
	}
	if opts.IncludeRecords {
		resp.Records = res.Records
	}
	return resp, nil
}

// RunJSON returns the encoded response and whether it came from the cache.
// Cache failures are logged and fall through to a fresh run.
func (r *Runner) RunJSON(ctx context.Context, cfg config.Config, opts models.SimulateOptions) ([]byte, bool, error) {
	var key string
	if r.cache != nil {
		k, err := cache.Key("sim", models.SimulateRequest{Scenario: cfg, Options: opts})
		if err != nil {
			return nil, false, err
		}
		key = k
		if body, ok, err := r.cache.Get(ctx, key); err != nil {
			log.Printf("Runner: cache get failed: %v", err)
		} else if ok {
			return body, true, nil
		}
	}

	resp, err := r.Run(cfg, opts)
	if err != nil {
		return nil, false, err
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, false, err
	}
	if r.cache != nil {
		if err := r.cache.Set(ctx, key, body); err != nil {
			log.Printf("Runner: cache set failed: %v", err)
		}
	}
	return body, false, nil
}
