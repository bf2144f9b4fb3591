package revenue

import (
	"testing"

	"energy-package-roi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreadArbitrageExample(t *testing.T) {
	m := &SpreadModel{Efficiency: 0.95, PeakTariff: 0.30, OffPeakTariff: 0.15, DaysPerMonth: 30}
	assert.InDelta(t, 42.75, m.MonthlyArbitrage(10), 1e-9)
}

func TestSpreadHasNoGridServices(t *testing.T) {
	m := DefaultSpread()
	assert.Equal(t, 0.0, m.MonthlyFCASRevenue(10))
	assert.Equal(t, 0.0, m.MonthlyDemandResponseRevenue(10))
}

func TestSpreadRejectsInvertedTariffs(t *testing.T) {
	m := DefaultSpread()
	m.OffPeakTariff = 0.40
	assert.True(t, model.IsConfigError(m.Validate()))
}

func TestSeasonalStreams(t *testing.T) {
	m := DefaultSeasonal()
	require.NoError(t, m.Validate())

	// Per-kWh daily value of the four buckets, off-peak low levels subtracted.
	perKWh := 0.5981*0.9 + (0.047*0.9 - 0.015) + 0.3478*0.9 + (0.039*0.9 - 0.015)
	assert.InDelta(t, 10*perKWh*91.25/12, m.MonthlyArbitrage(10), 1e-6)

	assert.InDelta(t, 249.66, m.MonthlyFCASRevenue(10), 1e-6)
	assert.InDelta(t, 380.0/12, m.MonthlyDemandResponseRevenue(10), 1e-9)
}

func TestZeroCapacityIsZeroRevenue(t *testing.T) {
	for _, m := range []Model{DefaultSpread(), DefaultSeasonal()} {
		assert.Equal(t, 0.0, m.MonthlyArbitrage(0), m.Name())
		assert.Equal(t, 0.0, m.MonthlyFCASRevenue(0), m.Name())
		assert.Equal(t, 0.0, m.MonthlyDemandResponseRevenue(-5), m.Name())
		assert.Equal(t, Estimate{}, m.Estimate(Assets{}), m.Name())
	}
}

func TestSeasonalRejectsMissingBucket(t *testing.T) {
	m := DefaultSeasonal()
	m.Buckets = m.Buckets[:3]
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, model.IsConfigError(err))
	assert.Contains(t, err.Error(), WinterOffPeak)
}

func TestSeasonalRejectsBadProbabilities(t *testing.T) {
	m := DefaultSeasonal()
	m.Buckets = DefaultBuckets()
	m.Buckets[0].Levels[0].Probability = 0.5
	assert.True(t, model.IsConfigError(m.Validate()))
}

func TestSeasonalRejectsInvertedParticipation(t *testing.T) {
	m := DefaultSeasonal()
	m.Participation[TierFast] = 0.5
	assert.True(t, model.IsConfigError(m.Validate()))
}

func TestFeedInStreams(t *testing.T) {
	f := FeedIn{Tariff: 0.05, OutputFactor: 0.4, SunHoursPerDay: 4.5, V2GExportFraction: 0.1}
	assert.InDelta(t, 6.6*0.4*4.5*30*0.05, f.SolarExport(6.6, 30), 1e-9)
	assert.InDelta(t, 0.05*60*0.1*30, f.VehicleToGrid(60, 30), 1e-9)

	f.Tariff = 0
	assert.Equal(t, 0.0, f.SolarExport(6.6, 30))
	assert.Equal(t, 0.0, f.VehicleToGrid(60, 30))
}

func TestEstimateSplitsMarketFromExport(t *testing.T) {
	m := DefaultSeasonal()
	e := m.Estimate(Assets{BatteryKWh: 10, SolarKW: 6.6, EVBatteryKWh: 60})

	assert.Greater(t, e.SolarExport, 0.0)
	assert.Greater(t, e.VehicleToGrid, 0.0)
	assert.InDelta(t, e.Arbitrage+e.Ancillary+e.DemandResponse+e.VehicleToGrid, e.Market(), 1e-9)
	assert.InDelta(t, e.Market()+e.SolarExport, e.Total(), 1e-9)
}

func TestFromConfig(t *testing.T) {
	m, err := FromConfig(Config{Name: "spread", PeakTariff: 0.40})
	require.NoError(t, err)
	s, ok := m.(*SpreadModel)
	require.True(t, ok)
	assert.Equal(t, 0.40, s.PeakTariff)
	assert.Equal(t, 0.15, s.OffPeakTariff)

	m, err = FromConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, "seasonal", m.Name())

	_, err = FromConfig(Config{Name: "oracle"})
	assert.True(t, model.IsConfigError(err))

	_, err = FromConfig(Config{Name: "seasonal", Buckets: DefaultBuckets()[:2]})
	assert.True(t, model.IsConfigError(err))
}

func TestBucketOverrideClassifiesOffPeakByName(t *testing.T) {
	want := DefaultSeasonal().MonthlyArbitrage(10)

	// Override tables that omit or misuse the flag still charge in the off-peak buckets.
	unflagged := DefaultBuckets()
	for i := range unflagged {
		unflagged[i].OffPeak = false
	}
	m, err := FromConfig(Config{Name: "seasonal", Buckets: unflagged})
	require.NoError(t, err)
	assert.InDelta(t, want, m.MonthlyArbitrage(10), 1e-9)

	allFlagged := DefaultBuckets()
	for i := range allFlagged {
		allFlagged[i].OffPeak = true
	}
	m, err = FromConfig(Config{Name: "seasonal", Buckets: allFlagged})
	require.NoError(t, err)
	assert.InDelta(t, want, m.MonthlyArbitrage(10), 1e-9)

	assert.True(t, Bucket{Name: WinterOffPeak}.IsOffPeak())
	assert.False(t, Bucket{Name: SummerPeak, OffPeak: true}.IsOffPeak())
	assert.True(t, Bucket{Name: "shoulder_night", OffPeak: true}.IsOffPeak())
}

func TestPriceSummary(t *testing.T) {
	summary := DefaultSeasonal().PriceSummary()
	require.Len(t, summary, 4)
	assert.Equal(t, SummerPeak, summary[0].Bucket)
	assert.InDelta(t, 0.5981, summary[0].ExpectedPrice, 1e-9)
	assert.True(t, summary[1].OffPeak)
}

func TestModelsAreDeterministic(t *testing.T) {
	m := DefaultSeasonal()
	a := Assets{BatteryKWh: 13.5, SolarKW: 8.8, EVBatteryKWh: 75}
	assert.Equal(t, m.Estimate(a), m.Estimate(a))
}
