package main

import (
	"flag"
	"fmt"
	"os"

	"cloud.google.com/go/civil"

	"energy-package-roi/internal/analysis"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/config"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"
	"energy-package-roi/internal/simulate"
)

// Demo:
// - Pick packages for a sample household with the recommendation rule
// - Simulate ten years with default assumptions and the seasonal revenue model
// - Print the first months, the annual rollup and one month's waterfall
func main() {
	cfgPath := flag.String("config", "", "Path to YAML scenario (optional)")
	n := flag.Int("n", 12, "Number of months to print")
	outCSV := flag.String("out", "", "Optional path to write the monthly CSV (e.g. results/demo.csv)")
	flag.Parse()

	usage := model.UsageProfile{
		DailyCommuteKm:   45,
		MonthlyPowerBill: 260,
		MonthlyFuelCost:  220,
		RoofAreaM2:       38,
	}
	cat := catalog.Default()
	ev, batt, solar, err := cat.Resolve(catalog.Recommend(usage))
	if err != nil {
		panic(err)
	}
	in := simulate.Inputs{
		EV:           ev,
		Battery:      batt,
		Solar:        solar,
		Usage:        usage,
		Assumptions:  model.DefaultAssumptions(),
		Revenue:      revenue.DefaultSeasonal(),
		HorizonYears: config.DefaultHorizonYears,
		StartDate:    civil.Date{Year: 2026, Month: 1, Day: 1},
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		in, err = cfg.Inputs(nil)
		if err != nil {
			panic(err)
		}
	}

	result, err := simulate.New().Run(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("Packages: ev=%s battery=%s solar=%s\n", in.EV.Name, in.Battery.Name, in.Solar.Name)
	fmt.Printf("Revenue model=%s Upfront=$%s\n\n", result.RevenueModel, simulate.FormatMoney(result.UpfrontCost))

	for i := 0; i < min(*n, len(result.Records)); i++ {
		r := result.Records[i]
		period := fmt.Sprintf("m%03d", r.Month)
		if r.Period != nil {
			period = r.Period.String()[:7]
		}
		fmt.Printf(
			"%s costs=%9s  benefits=%9s  net=%9s  batt=%5.1f%%  veh=%5.1f%%  %v\n",
			period,
			simulate.FormatMoney(r.Costs.Total()),
			simulate.FormatMoney(r.Benefits.Total()),
			simulate.FormatMoney(r.NetPosition),
			r.Health.BatteryPct,
			r.Health.VehicleValuePct,
			r.Events,
		)
	}

	fmt.Println("\nAnnual:")
	for _, y := range analysis.AnnualRollup(result.Records) {
		fmt.Printf("  year %2d  net=%10s  cum=%11s\n", y.Year, simulate.FormatMoney(y.NetPosition), simulate.FormatMoney(y.CumulativeNet))
	}

	fmt.Println("\nWaterfall (first month):")
	for _, e := range analysis.Waterfall(result.Records[0]) {
		fmt.Printf("  %-24s %10s\n", e.Label, simulate.FormatMoney(e.Amount))
	}

	if *outCSV != "" {
		if err := simulate.WriteRecordsCSV(*outCSV, result.Records); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	s := analysis.SummarizeResult(result)
	fmt.Printf("\nDone. Net over %d months=$%s  break-even month=%d\n", s.Months, simulate.FormatMoney(s.NetPosition), s.BreakEvenMonth)
}
