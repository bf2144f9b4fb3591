package config

import (
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/civil"

	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

const scenarioYAML = `
name: family
packages:
  ev: Essential
  battery: Starter
  solar: Essential
usage:
  daily_commute_km: 35
  monthly_power_bill: 240
  monthly_fuel_cost: 260
  roof_area_m2: 40
assumptions:
  interest_rate: 0.059
  maintenance:
    tyres:
      cost: 1200
  lease:
    term_years: 4
    rate: 0.06
    residual_percentage: 0.3
    tax_benefit_rate: 0.2
revenue:
  name: spread
  peak_tariff: 0.35
horizon_years: 12
start_date: "2026-07-01"
`

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", scenarioYAML)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "family", c.Name)
	assert.Equal(t, catalog.Selection{EV: "Essential", Battery: "Starter", Solar: "Essential"}, c.Packages)

	in, err := c.Inputs(nil)
	require.NoError(t, err)
	assert.Equal(t, "BYD Atto 3", in.EV.Model)
	assert.Equal(t, 12, in.HorizonYears)
	assert.Equal(t, civil.Date{Year: 2026, Month: 7, Day: 1}, in.StartDate)
	assert.Equal(t, "spread", in.Revenue.Name())

	a := in.Assumptions
	assert.Equal(t, 0.059, a.InterestRate)
	assert.Equal(t, 1200.0, a.Maintenance.Tyres.Cost)
	assert.Equal(t, 4.0, a.Maintenance.Tyres.EveryYears)
	assert.Equal(t, model.DefaultAssumptions().PowerBillReduction, a.PowerBillReduction)
	require.NotNil(t, a.Lease)
	assert.Equal(t, 4, a.Lease.TermYears)
}

func TestLoadDefaultsHorizon(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "s.yaml", "packages:\n  battery: Essential\n")

	c, err := Load(path)
	require.NoError(t, err)
	in, err := c.Inputs(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHorizonYears, in.HorizonYears)
	assert.Equal(t, "seasonal", in.Revenue.Name())
}

func TestLoadResolvesCatalogRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "range.hjson", `{
  // single battery offer
  batteries: [
    {
      name: Tiny
      capacity_kwh: 5
      peak_power_kw: 2.5
      price: 6000
    }
  ]
}`)
	path := writeFile(t, dir, "s.yaml", "catalog_file: range.hjson\npackages:\n  battery: Tiny\n")

	c, err := Load(path)
	require.NoError(t, err)
	in, err := c.Inputs(nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, in.Battery.CapacityKWh)
}

func TestValidateRejectsBadScenarios(t *testing.T) {
	cases := map[string]string{
		"unknown package":   "packages:\n  ev: Hover\n",
		"negative bill":     "packages:\n  battery: Starter\nusage:\n  monthly_power_bill: -5\n",
		"bad revenue model": "revenue:\n  name: oracle\n",
		"bad start date":    "start_date: July\n",
		"negative horizon":  "horizon_years: -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "s.yaml", body)
			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, model.IsConfigError(err), err.Error())
		})
	}
}

func TestMergeAssumptions(t *testing.T) {
	base := model.DefaultAssumptions()
	out := MergeAssumptions(base, model.FinancialAssumptions{
		FuelInflation: 0.06,
		Maintenance:   model.MaintenanceTable{InverterReplacement: model.MaintenanceItem{EveryYears: 12}},
	})
	assert.Equal(t, 0.06, out.FuelInflation)
	assert.Equal(t, base.InterestRate, out.InterestRate)
	assert.Equal(t, base.Maintenance.InverterReplacement.Cost, out.Maintenance.InverterReplacement.Cost)
	assert.Equal(t, 12.0, out.Maintenance.InverterReplacement.EveryYears)
	assert.Nil(t, out.Lease)

	// The override's lease is copied, not aliased.
	lease := &model.LeaseTerms{TermYears: 3}
	out = MergeAssumptions(base, model.FinancialAssumptions{Lease: lease})
	lease.TermYears = 9
	assert.Equal(t, 3, out.Lease.TermYears)
}

func TestExampleScenariosLoad(t *testing.T) {
	for _, name := range []string{"config.yaml", "lease.yaml", "custom-catalog.yaml"} {
		t.Run(name, func(t *testing.T) {
			c, err := Load(filepath.Join("..", "..", "examples", name))
			require.NoError(t, err)
			_, err = c.Inputs(nil)
			require.NoError(t, err)
		})
	}

	c, err := Load(filepath.Join("..", "..", "examples", "custom-catalog.yaml"))
	require.NoError(t, err)
	in, err := c.Inputs(nil)
	require.NoError(t, err)
	assert.Equal(t, "Compact Hatch", in.EV.Model)
	assert.Equal(t, 10.0, in.Battery.CapacityKWh)
}
