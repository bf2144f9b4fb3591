package simulate

import (
	"fmt"
	"math"
	"time"

	"cloud.google.com/go/civil"

	"energy-package-roi/internal/finance"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"
)

// daysPerMonth is used for usage-driven costs (charging).
const daysPerMonth = 30

// maxHorizonYears bounds the month loop.
const maxHorizonYears = 50

// Inputs is everything a single run needs. Specs are copied by value; a zero
// spec (no capacity and no price) means the package omits that asset.
type Inputs struct {
	EV      model.EVSpec
	Battery model.BatterySpec
	Solar   model.SolarSpec

	Usage       model.UsageProfile
	Assumptions model.FinancialAssumptions
	Revenue     revenue.Model

	HorizonYears int
	// StartDate labels each record with its calendar month when set.
	StartDate civil.Date
}

func (in Inputs) hasEV() bool      { return in.EV.Price > 0 || in.EV.BatteryCapacityKWh > 0 }
func (in Inputs) hasBattery() bool { return in.Battery.Price > 0 || in.Battery.CapacityKWh > 0 }
func (in Inputs) hasSolar() bool   { return in.Solar.Price > 0 || in.Solar.CapacityKW > 0 }

// Validate rejects any input that would make the run impossible.
func (in Inputs) Validate() error {
	if in.HorizonYears <= 0 {
		return model.Invalid("horizon_years", "must be > 0")
	}
	if in.HorizonYears > maxHorizonYears {
		return model.Invalid("horizon_years", fmt.Sprintf("must be <= %d", maxHorizonYears))
	}
	if in.Revenue == nil {
		return model.Invalid("revenue", "model is required")
	}
	for _, err := range []error{
		in.EV.Validate(),
		in.Battery.Validate(),
		in.Solar.Validate(),
		in.Usage.Validate(),
		in.Assumptions.Validate(),
		in.Revenue.Validate(),
	} {
		if err != nil {
			return err
		}
	}
	if in.EV.ProfitShare+in.Battery.ProfitShare > 1 {
		return model.Invalid("profit_share", "ev and battery shares must not exceed 1 combined")
	}
	if !in.StartDate.IsZero() && !in.StartDate.IsValid() {
		return model.Invalid("start_date", "is not a valid date")
	}
	return nil
}

// BundlePrincipal is the battery and solar price plus installation, net of rebates.
func (in Inputs) BundlePrincipal() float64 {
	a := in.Assumptions
	total := in.Battery.Price*(1-a.BatteryRebateRate) + a.Installation.Battery(in.Battery.CapacityKWh) +
		in.Solar.Price*(1-a.SolarRebateRate) + a.Installation.Solar(in.Solar.CapacityKW)
	return math.Max(0, total)
}

// UpfrontCost is the whole package cost at month 0.
func (in Inputs) UpfrontCost() float64 {
	return in.BundlePrincipal() + in.EV.Price
}

type Engine struct{}

func New() *Engine { return &Engine{} }

// Simulate runs a single simulation with a fresh engine.
func Simulate(ev model.EVSpec, battery model.BatterySpec, solar model.SolarSpec, usage model.UsageProfile,
	assumptions model.FinancialAssumptions, rev revenue.Model, horizonYears int) (*Result, error) {
	return New().Run(Inputs{
		EV:           ev,
		Battery:      battery,
		Solar:        solar,
		Usage:        usage,
		Assumptions:  assumptions,
		Revenue:      rev,
		HorizonYears: horizonYears,
	})
}

// Run folds over every month of the horizon. The only carried state is the
// bundle loan and the current vehicle financing span.
func (e *Engine) Run(in Inputs) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a := in.Assumptions
	months := in.HorizonYears * 12

	renewKind, renewEvery := EventVehicleReplacement, a.VehicleReplacementYears*12
	if a.Lease != nil {
		renewKind, renewEvery = EventLeaseRenewal, a.Lease.TermYears*12
	}
	events := buildSchedule(months, in.hasBattery() || in.hasSolar(), in.hasEV(), renewKind, renewEvery)

	var start time.Time
	if !in.StartDate.IsZero() {
		start = civil.Date{Year: in.StartDate.Year, Month: in.StartDate.Month, Day: 1}.In(time.UTC)
	}

	res := &Result{
		Records:      make([]MonthlyRecord, 0, months),
		Events:       events,
		UpfrontCost:  in.UpfrontCost(),
		RevenueModel: in.Revenue.Name(),
	}

	var vehicle *VehicleSpan
	for m := 0; m < months; m++ {
		y := float64(m) / 12

		var fired []EventKind
		for _, ev := range events.At(m) {
			switch ev.Kind {
			case EventBundleLoanStart:
				sched, err := finance.AmortizeMonths(in.BundlePrincipal(), a.InterestRate, a.LoanTermYears*12)
				if err != nil {
					return nil, fmt.Errorf("month %d bundle loan: %w", m, err)
				}
				res.BundleLoan = sched
			case EventVehicleFinanceStart, EventLeaseRenewal, EventVehicleReplacement:
				span, err := financeVehicle(in, ev.Kind, m, vehicle)
				if err != nil {
					return nil, fmt.Errorf("month %d %s: %w", m, ev.Kind, err)
				}
				res.VehicleSpans = append(res.VehicleSpans, span)
				vehicle = &res.VehicleSpans[len(res.VehicleSpans)-1]
			}
			fired = append(fired, ev.Kind)
		}

		rec := monthRecord(in, m, y, res.BundleLoan, vehicle)
		rec.Events = fired
		if !start.IsZero() {
			d := civil.DateOf(start.AddDate(0, m, 0))
			rec.Period = &d
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// financeVehicle prices the vehicle at month m and finances it net of the
// trade-in credit from the previous span. A negative credit (more owed than
// the old vehicle is worth) is rolled into the new financed amount.
func financeVehicle(in Inputs, kind EventKind, m int, prev *VehicleSpan) (VehicleSpan, error) {
	a := in.Assumptions
	y := float64(m) / 12

	price := finance.InflatedValue(in.EV.Price, a.VehiclePriceInflation, y)
	credit := 0.0
	if prev != nil {
		held := m - prev.StartMonth
		value := prev.AssetValue * finance.RetentionFactor(a.VehicleDepreciationRate, float64(held)/12)
		credit = value - prev.outstanding(held)
	}
	span := VehicleSpan{
		StartMonth:    m,
		Kind:          kind,
		AssetValue:    price,
		TradeInCredit: credit,
		Financed:      math.Max(0, price-credit),
	}

	if a.Lease != nil {
		l, err := finance.NewLease(span.Financed, *a.Lease)
		if err != nil {
			return VehicleSpan{}, err
		}
		span.Lease = l
		span.Payment = l.Payment()
		return span, nil
	}
	sched, err := finance.AmortizeMonths(span.Financed, a.InterestRate, a.LoanTermYears*12)
	if err != nil {
		return VehicleSpan{}, err
	}
	span.Loan = sched
	span.Payment = sched.Payment
	return span, nil
}

// outstanding is what is still owed on the span after held payments.
// A lease also owes its residual.
func (s *VehicleSpan) outstanding(held int) float64 {
	if s.Lease != nil {
		return s.Lease.ResidualValue + s.Lease.Schedule.BalanceAfter(held)
	}
	return s.Loan.BalanceAfter(held)
}

func (s *VehicleSpan) paymentAt(monthsInto int) float64 {
	if s.Lease != nil {
		return s.Lease.Schedule.PaymentAt(monthsInto)
	}
	return s.Loan.PaymentAt(monthsInto)
}

func monthRecord(in Inputs, m int, y float64, bundle *finance.Schedule, vehicle *VehicleSpan) MonthlyRecord {
	a := in.Assumptions
	hasEV, hasBattery, hasSolar := in.hasEV(), in.hasBattery(), in.hasSolar()

	batteryRet := finance.RetentionFactor(a.BatteryDegradationRate, y)
	solarRet := finance.RetentionFactor(a.SolarDegradationRate, y)

	var costs CostBreakdown
	var benefits BenefitBreakdown
	var health AssetHealth

	costs.BundleLoan = bundle.PaymentAt(m)

	assets := revenue.Assets{}
	providerShare := 0.0
	if hasBattery {
		providerShare = in.Battery.ProfitShare
		assets.BatteryKWh = in.Battery.CapacityKWh * batteryRet
		costs.BatteryService = a.Maintenance.BatteryService.Monthly()
		health.BatteryPct = batteryRet * 100
	}
	if hasSolar {
		assets.SolarKW = in.Solar.CapacityKW * solarRet
		costs.SolarCleaning = a.Maintenance.SolarCleaning.Monthly()
		costs.InverterReplacement = a.Maintenance.InverterReplacement.Monthly()
		health.SolarPct = solarRet * 100
	}
	if hasBattery || hasSolar {
		benefits.PowerBillSavings = finance.InflatedValue(in.Usage.MonthlyPowerBill, a.PowerBillInflation, y) * a.PowerBillReduction
	}

	if hasEV && vehicle != nil {
		monthsInto := m - vehicle.StartMonth
		held := float64(monthsInto) / 12

		costs.VehicleFinance = vehicle.paymentAt(monthsInto)
		costs.Charging = in.Usage.DailyCommuteKm * in.EV.ConsumptionKWhPerKm * daysPerMonth *
			finance.InflatedValue(a.ChargingTariff, a.PowerBillInflation, y)
		costs.VehicleService = a.Maintenance.VehicleService.Monthly()
		costs.Tyres = a.Maintenance.Tyres.Monthly()

		if in.EV.V2GCapable {
			assets.EVBatteryKWh = in.EV.BatteryCapacityKWh * finance.RetentionFactor(a.BatteryDegradationRate, held)
		}
		benefits.FuelSavings = finance.InflatedValue(in.Usage.MonthlyFuelCost, a.FuelInflation, y) * a.FuelCostReduction
		if vehicle.Lease != nil {
			benefits.LeaseTaxBenefit = a.Lease.TaxBenefitRate * costs.VehicleFinance
		}
		health.VehicleValuePct = finance.RetentionFactor(a.VehicleDepreciationRate, held) * 100
		providerShare += in.EV.ProfitShare
	}

	est := in.Revenue.Estimate(assets)
	benefits.Arbitrage = est.Arbitrage
	benefits.Ancillary = est.Ancillary
	benefits.DemandResponse = est.DemandResponse
	benefits.SolarExport = est.SolarExport
	benefits.VehicleToGrid = est.VehicleToGrid
	costs.ProviderShare = math.Max(0, est.Market()) * providerShare

	return MonthlyRecord{
		Month:       m,
		Year:        y,
		Costs:       costs,
		Benefits:    benefits,
		Health:      health,
		NetPosition: benefits.Total() - costs.Total(),
	}
}
