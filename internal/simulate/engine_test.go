package simulate

import (
	"bytes"
	"encoding/csv"
	"testing"

	"cloud.google.com/go/civil"

	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInputs(t *testing.T) Inputs {
	t.Helper()
	return Inputs{
		EV: model.EVSpec{
			Name:                "Essential",
			BatteryCapacityKWh:  60,
			ChargingPowerKW:     7,
			V2GCapable:          true,
			Price:               65000,
			ProfitShare:         0.15,
			ConsumptionKWhPerKm: 0.16,
		},
		Battery: model.BatterySpec{
			Name:        "Starter",
			CapacityKWh: 10,
			PeakPowerKW: 5,
			Price:       15000,
			ProfitShare: 0.20,
		},
		Solar: model.SolarSpec{
			Name:       "Starter",
			CapacityKW: 6.6,
			Price:      10000,
		},
		Usage: model.UsageProfile{
			DailyCommuteKm:   40,
			MonthlyPowerBill: 250,
			MonthlyFuelCost:  300,
			RoofAreaM2:       40,
		},
		Assumptions:  model.DefaultAssumptions(),
		Revenue:      revenue.DefaultSeasonal(),
		HorizonYears: 10,
	}
}

func leaseInputs(t *testing.T) Inputs {
	t.Helper()
	in := testInputs(t)
	in.Assumptions.Lease = &model.LeaseTerms{TermYears: 4, Rate: 0.06, ResidualPercentage: 0.3, TaxBenefitRate: 0.2}
	return in
}

func TestRunDeterministicAndContiguous(t *testing.T) {
	in := testInputs(t)

	r1, err := New().Run(in)
	require.NoError(t, err)
	r2, err := New().Run(in)
	require.NoError(t, err)

	require.Len(t, r1.Records, in.HorizonYears*12)
	assert.Equal(t, r1.Records, r2.Records)

	for i, rec := range r1.Records {
		assert.Equal(t, i, rec.Month)
		assert.Equal(t, float64(i)/12, rec.Year)
	}
}

func TestNetPositionIsBenefitsMinusCosts(t *testing.T) {
	res, err := New().Run(leaseInputs(t))
	require.NoError(t, err)
	for _, rec := range res.Records {
		assert.Equal(t, rec.Benefits.Total()-rec.Costs.Total(), rec.NetPosition)
	}
}

func TestLeaseRenewalEvents(t *testing.T) {
	res, err := New().Run(leaseInputs(t))
	require.NoError(t, err)

	assert.Equal(t, []int{48, 96}, res.Events.Months(EventLeaseRenewal))
	require.Len(t, res.VehicleSpans, 3)
	assert.Equal(t, 0, res.VehicleSpans[0].StartMonth)
	assert.Equal(t, 48, res.VehicleSpans[1].StartMonth)
	assert.Equal(t, 96, res.VehicleSpans[2].StartMonth)

	for _, m := range []int{48, 96} {
		before, after := res.Records[m-1], res.Records[m]
		assert.Contains(t, after.Events, EventLeaseRenewal)
		assert.NotContains(t, before.Events, EventLeaseRenewal)
		assert.NotEqual(t, before.Costs.VehicleFinance, after.Costs.VehicleFinance)
	}

	first, second := res.VehicleSpans[0], res.VehicleSpans[1]
	assert.Greater(t, second.AssetValue, first.AssetValue)
	assert.Greater(t, second.TradeInCredit, 0.0)
	assert.InDelta(t, second.AssetValue-second.TradeInCredit, second.Financed, 1e-9)
	assert.Equal(t, 0.0, first.TradeInCredit)

	// The tax benefit tracks the current lease payment.
	rec := res.Records[50]
	assert.InDelta(t, 0.2*rec.Costs.VehicleFinance, rec.Benefits.LeaseTaxBenefit, 1e-9)
}

func TestVehicleReplacementOnLoan(t *testing.T) {
	in := testInputs(t)
	in.Assumptions.VehicleReplacementYears = 3

	res, err := New().Run(in)
	require.NoError(t, err)

	assert.Equal(t, []int{36, 72, 108}, res.Events.Months(EventVehicleReplacement))
	require.Len(t, res.VehicleSpans, 4)
	for _, span := range res.VehicleSpans {
		assert.GreaterOrEqual(t, span.Financed, 0.0)
		assert.Len(t, span.Loan.Periods, in.Assumptions.LoanTermYears*12)
	}

	// Replacing before payoff: credit is the depreciated value less the unpaid balance.
	prev := res.VehicleSpans[0]
	value := prev.AssetValue * 0.85 * 0.85 * 0.85
	want := value - prev.Loan.BalanceAfter(36)
	assert.InDelta(t, want, res.VehicleSpans[1].TradeInCredit, 1e-6)
}

func TestVehicleReplacementRollsNegativeEquity(t *testing.T) {
	in := testInputs(t)
	in.Assumptions.VehicleDepreciationRate = 0.5
	in.Assumptions.VehicleReplacementYears = 1
	in.Assumptions.LoanTermYears = 5

	res, err := New().Run(in)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.VehicleSpans), 2)

	prev, next := res.VehicleSpans[0], res.VehicleSpans[1]
	value := prev.AssetValue * 0.5
	owed := prev.Loan.BalanceAfter(12)
	require.Greater(t, owed, value)

	assert.InDelta(t, value-owed, next.TradeInCredit, 1e-6)
	assert.InDelta(t, next.AssetValue+owed-value, next.Financed, 1e-6)
	assert.Greater(t, next.Financed, next.AssetValue)
	assert.InDelta(t, next.Financed, next.Loan.Principal, 1e-6)
}

func TestVehicleLoanPaysOff(t *testing.T) {
	res, err := New().Run(testInputs(t))
	require.NoError(t, err)

	term := model.DefaultAssumptions().LoanTermYears * 12
	assert.Greater(t, res.Records[term-1].Costs.VehicleFinance, 0.0)
	assert.Equal(t, 0.0, res.Records[term].Costs.VehicleFinance)
	assert.Equal(t, 0.0, res.Records[term].Costs.BundleLoan)
}

func TestZeroRateBundleLoan(t *testing.T) {
	in := testInputs(t)
	in.Assumptions.InterestRate = 0

	res, err := New().Run(in)
	require.NoError(t, err)
	assert.InDelta(t, in.BundlePrincipal()/60, res.Records[0].Costs.BundleLoan, 1e-9)
}

func TestBundlePrincipalAppliesRebatesAndInstallation(t *testing.T) {
	in := testInputs(t)
	a := in.Assumptions
	want := 15000*(1-a.BatteryRebateRate) + a.Installation.BatteryBase + 10*a.Installation.BatteryPerKWh +
		10000*(1-a.SolarRebateRate) + a.Installation.SolarBase + 6.6*a.Installation.SolarPerKW
	assert.InDelta(t, want, in.BundlePrincipal(), 1e-9)
	assert.InDelta(t, want+65000, in.UpfrontCost(), 1e-9)
}

func TestBatteryOnlyPackage(t *testing.T) {
	in := testInputs(t)
	in.EV = model.EVSpec{}
	in.Solar = model.SolarSpec{}

	res, err := New().Run(in)
	require.NoError(t, err)

	assert.Empty(t, res.VehicleSpans)
	for _, rec := range res.Records {
		assert.Equal(t, 0.0, rec.Costs.VehicleFinance)
		assert.Equal(t, 0.0, rec.Costs.Charging)
		assert.Equal(t, 0.0, rec.Benefits.FuelSavings)
		assert.Equal(t, 0.0, rec.Benefits.SolarExport)
		assert.Equal(t, 0.0, rec.Benefits.VehicleToGrid)
	}
	assert.Greater(t, res.Records[0].Benefits.Arbitrage, 0.0)
}

func TestHealthDegrades(t *testing.T) {
	res, err := New().Run(testInputs(t))
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Records[0].Health.BatteryPct)
	assert.Equal(t, 100.0, res.Records[0].Health.SolarPct)
	assert.InDelta(t, 98.0, res.Records[12].Health.BatteryPct, 1e-9)
	assert.Less(t, res.Records[119].Health.SolarPct, res.Records[60].Health.SolarPct)
	assert.Less(t, res.Records[24].Benefits.Arbitrage, res.Records[0].Benefits.Arbitrage)
}

func TestProviderShareIsCost(t *testing.T) {
	res, err := New().Run(testInputs(t))
	require.NoError(t, err)

	b := res.Records[0].Benefits
	market := b.Arbitrage + b.Ancillary + b.DemandResponse + b.VehicleToGrid
	assert.InDelta(t, market*(0.15+0.20), res.Records[0].Costs.ProviderShare, 1e-9)
}

func TestStartDateLabelsPeriods(t *testing.T) {
	in := testInputs(t)
	in.StartDate = civil.Date{Year: 2026, Month: 1, Day: 31}

	res, err := New().Run(in)
	require.NoError(t, err)

	require.NotNil(t, res.Records[0].Period)
	assert.Equal(t, civil.Date{Year: 2026, Month: 1, Day: 1}, *res.Records[0].Period)
	assert.Equal(t, civil.Date{Year: 2027, Month: 2, Day: 1}, *res.Records[13].Period)

	res, err = New().Run(testInputs(t))
	require.NoError(t, err)
	assert.Nil(t, res.Records[0].Period)
}

func TestRunRejectsInvalidInputs(t *testing.T) {
	cases := map[string]func(in *Inputs){
		"zero horizon":      func(in *Inputs) { in.HorizonYears = 0 },
		"negative price":    func(in *Inputs) { in.Battery.Price = -1 },
		"negative capacity": func(in *Inputs) { in.Solar.CapacityKW = -2 },
		"nil revenue":       func(in *Inputs) { in.Revenue = nil },
		"negative rate":     func(in *Inputs) { in.Assumptions.InterestRate = -0.01 },
		"missing bucket": func(in *Inputs) {
			m := revenue.DefaultSeasonal()
			m.Buckets = m.Buckets[1:]
			in.Revenue = m
		},
		"profit shares over one": func(in *Inputs) {
			in.EV.ProfitShare = 0.6
			in.Battery.ProfitShare = 0.6
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := testInputs(t)
			mutate(&in)
			res, err := New().Run(in)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, model.IsConfigError(err))
		})
	}
}

func TestSimulateWrapper(t *testing.T) {
	in := testInputs(t)
	res, err := Simulate(in.EV, in.Battery, in.Solar, in.Usage, in.Assumptions, in.Revenue, 5)
	require.NoError(t, err)
	assert.Len(t, res.Records, 60)
	assert.Equal(t, "seasonal", res.RevenueModel)
}

func TestEventScheduleAt(t *testing.T) {
	s := buildSchedule(120, true, true, EventLeaseRenewal, 48)
	assert.Equal(t, []Event{{0, EventBundleLoanStart}, {0, EventVehicleFinanceStart}}, []Event(s.At(0)))
	assert.Equal(t, []Event{{48, EventLeaseRenewal}}, []Event(s.At(48)))
	assert.Empty(t, s.At(47))
	assert.Empty(t, s.At(200))
}

func TestWriteRecords(t *testing.T) {
	res, err := Simulate(testInputs(t).EV, model.BatterySpec{}, model.SolarSpec{}, model.UsageProfile{}, model.DefaultAssumptions(), revenue.DefaultSpread(), 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteRecords(&buf, res.Records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, "month", rows[0][0])
	assert.Equal(t, "VEHICLE_FINANCE_START", rows[1][len(rows[1])-1])
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "42.75", FormatMoney(42.75))
	assert.Equal(t, "0.13", FormatMoney(0.125))
	assert.Equal(t, "-1.50", FormatMoney(-1.5))
}
