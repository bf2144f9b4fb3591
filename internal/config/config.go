package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/civil"
	"gopkg.in/yaml.v3"

	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"
	"energy-package-roi/internal/simulate"
)

// DefaultHorizonYears applies when a scenario omits horizon_years.
const DefaultHorizonYears = 10

// Config is the on-disk scenario shape (YAML). The same shape is accepted as
// JSON by the API and stored for saved scenarios.
type Config struct {
	Name string `yaml:"name" json:"name"`

	// Optional: load packages from a catalog file (Hjson or JSON) instead of the built-in range.
	CatalogFile string            `yaml:"catalog_file,omitempty" json:"catalog_file,omitempty"`
	Packages    catalog.Selection `yaml:"packages" json:"packages"`

	Usage model.UsageProfile `yaml:"usage" json:"usage"`
	// Assumptions overlay model.DefaultAssumptions(); zero fields keep the default.
	Assumptions model.FinancialAssumptions `yaml:"assumptions" json:"assumptions"`
	Revenue     revenue.Config             `yaml:"revenue" json:"revenue"`

	HorizonYears int `yaml:"horizon_years" json:"horizon_years"`
	// StartDate is an optional YYYY-MM-DD calendar start.
	StartDate string `yaml:"start_date,omitempty" json:"start_date,omitempty"`

	catalog *catalog.Catalog
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the scenario and its catalog file, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.CatalogFile != "" {
		catalogPath := c.CatalogFile
		if !filepath.IsAbs(catalogPath) {
			// Relative paths resolve against the config file's directory first, then cwd.
			cand := filepath.Join(filepath.Dir(path), catalogPath)
			if _, err := os.Stat(cand); err == nil {
				catalogPath = cand
			}
		}
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return nil, err
		}
		c.catalog = cat
	}
	return &c, nil
}

// Catalog returns the scenario's own catalog, or fallback, or the built-in range.
func (c *Config) Catalog(fallback *catalog.Catalog) *catalog.Catalog {
	if c.catalog != nil {
		return c.catalog
	}
	if fallback != nil {
		return fallback
	}
	return catalog.Default()
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	in, err := c.Inputs(nil)
	if err != nil {
		return err
	}
	return in.Validate()
}

// Inputs resolves packages, merges assumptions over defaults and builds the revenue model.
func (c *Config) Inputs(fallback *catalog.Catalog) (simulate.Inputs, error) {
	if c == nil {
		return simulate.Inputs{}, errors.New("config is nil")
	}
	ev, batt, solar, err := c.Catalog(fallback).Resolve(c.Packages)
	if err != nil {
		return simulate.Inputs{}, err
	}
	rev, err := revenue.FromConfig(c.Revenue)
	if err != nil {
		return simulate.Inputs{}, fmt.Errorf("revenue config invalid: %w", err)
	}

	in := simulate.Inputs{
		EV:           ev,
		Battery:      batt,
		Solar:        solar,
		Usage:        c.Usage,
		Assumptions:  MergeAssumptions(model.DefaultAssumptions(), c.Assumptions),
		Revenue:      rev,
		HorizonYears: c.HorizonYears,
	}
	if in.HorizonYears == 0 {
		in.HorizonYears = DefaultHorizonYears
	}
	if c.StartDate != "" {
		d, err := civil.ParseDate(c.StartDate)
		if err != nil {
			return simulate.Inputs{}, model.Invalid("start_date", fmt.Sprintf("%q is not YYYY-MM-DD", c.StartDate))
		}
		in.StartDate = d
	}
	return in, nil
}
