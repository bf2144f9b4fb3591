package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"energy-package-roi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.EVs, 3)
	assert.Len(t, c.Batteries, 3)
	assert.Len(t, c.Solar, 3)
	assert.Len(t, c.Combinations(), 27)
}

func TestLookupsAreCaseInsensitive(t *testing.T) {
	c := Default()

	ev, ok := c.EV("performance")
	require.True(t, ok)
	assert.Equal(t, "Tesla Model 3", ev.Model)
	assert.Equal(t, 85000.0, ev.Price)

	b, ok := c.Battery("Starter")
	require.True(t, ok)
	assert.Equal(t, 10.0, b.CapacityKWh)

	s, ok := c.SolarPackage("Performance")
	require.True(t, ok)
	assert.Equal(t, 13.2, s.CapacityKW)

	_, ok = c.EV("Ultra")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	c := Default()

	ev, batt, solar, err := c.Resolve(Selection{EV: "Essential", Battery: "none", Solar: "Essential"})
	require.NoError(t, err)
	assert.Equal(t, "BYD Atto 3", ev.Model)
	assert.Equal(t, model.BatterySpec{}, batt)
	assert.Equal(t, 8.8, solar.CapacityKW)

	_, _, _, err = c.Resolve(Selection{Battery: "Mega"})
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))
	assert.Contains(t, err.Error(), "Mega")
}

func TestRecommendThresholds(t *testing.T) {
	cases := []struct {
		usage model.UsageProfile
		want  Selection
	}{
		{model.UsageProfile{DailyCommuteKm: 40, MonthlyPowerBill: 200, RoofAreaM2: 30}, Selection{"Essential", "Starter", "Starter"}},
		{model.UsageProfile{DailyCommuteKm: 41, MonthlyPowerBill: 201, RoofAreaM2: 31}, Selection{"Performance", "Essential", "Essential"}},
		{model.UsageProfile{DailyCommuteKm: 80, MonthlyPowerBill: 400, RoofAreaM2: 45}, Selection{"Performance", "Essential", "Essential"}},
		{model.UsageProfile{DailyCommuteKm: 81, MonthlyPowerBill: 401, RoofAreaM2: 46}, Selection{"Premium", "Performance", "Performance"}},
	}
	c := Default()
	for _, tc := range cases {
		got := Recommend(tc.usage)
		assert.Equal(t, tc.want, got)
		_, _, _, err := c.Resolve(got)
		assert.NoError(t, err)
	}
}

func TestParseHjsonWithComments(t *testing.T) {
	raw := []byte(`{
  # a single compact package
  evs: [
    {
      name: City
      model: Compact EV
      battery_capacity_kwh: 40
      price: 38000
      profit_share: 0.1
      consumption_kwh_per_km: 0.13
    }
  ]
  batteries: []
  solar: []
}`)
	c, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, c.EVs, 1)
	assert.Equal(t, "Compact EV", c.EVs[0].Model)
	assert.Equal(t, 40.0, c.EVs[0].BatteryCapacityKWh)
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	_, err := Parse([]byte(`{"evs": [{"name": "Bad", "price": -1}]}`))
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))

	_, err = Parse([]byte(`{"batteries": [{"name": "A", "capacity_kwh": 5}, {"name": "a", "capacity_kwh": 6}]}`))
	assert.True(t, model.IsConfigError(err))

	_, err = Parse([]byte(`{"solar": [{"capacity_kw": 5}]}`))
	assert.True(t, model.IsConfigError(err))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hjson")
	require.NoError(t, Default().Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "ev=Essential battery=none solar=Starter", Selection{EV: "Essential", Solar: "Starter"}.String())
}
