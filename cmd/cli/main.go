package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"energy-package-roi/internal/analysis"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/config"
	"energy-package-roi/internal/model"
	"energy-package-roi/internal/revenue"
	"energy-package-roi/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "estimate":
		cmdEstimate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "catalog":
		cmdCatalog(os.Args[2:])
	case "recommend":
		cmdRecommend(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/monthly.csv [--annual] [--waterfall 0]")
	fmt.Println("  cli estimate --battery-kwh 13.5 [--solar-kw 6.6] [--ev-kwh 60] [--strategy seasonal|spread]")
	fmt.Println("  cli compare --config examples/config.yaml")
	fmt.Println("  cli catalog [--file examples/catalog.hjson] [--export out.hjson]")
	fmt.Println("  cli recommend --commute 50 --bill 300 --roof 40")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate writes one CSV row per month with the full cost/benefit breakdown")
	fmt.Println("  - compare ranks every catalog combination by net position over the horizon")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	if model.IsConfigError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}

func loadInputs(path string) (*config.Config, simulate.Inputs) {
	cfg, err := config.Load(path)
	if err != nil {
		fail(err)
	}
	in, err := cfg.Inputs(nil)
	if err != nil {
		fail(err)
	}
	return cfg, in
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	outPath := fs.String("out", "results/monthly.csv", "Output CSV path (empty to skip)")
	annual := fs.Bool("annual", false, "Print the annual rollup")
	waterfall := fs.Int("waterfall", -1, "Print the waterfall for this 0-based month (-1 to skip)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, in := loadInputs(*cfgPath)

	res, err := simulate.New().Run(in)
	if err != nil {
		fail(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fail(err)
		}
		if err := simulate.WriteRecordsCSV(*outPath, res.Records); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Records), *outPath)
	}

	s := analysis.SummarizeResult(res)
	fmt.Printf("Scenario=%s packages=%s revenue=%s horizon=%dy\n", cfg.Name, cfg.Packages, res.RevenueModel, in.HorizonYears)
	printSummary(s)

	if *annual {
		fmt.Println()
		printAnnual(analysis.AnnualRollup(res.Records))
	}
	if *waterfall >= 0 {
		if *waterfall >= len(res.Records) {
			fail(model.Invalid("waterfall", fmt.Sprintf("month must be < %d", len(res.Records))))
		}
		fmt.Println()
		printWaterfall(*waterfall, analysis.Waterfall(res.Records[*waterfall]))
	}
}

func cmdEstimate(args []string) {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	batteryKWh := fs.Float64("battery-kwh", 0, "Home battery capacity in kWh")
	solarKW := fs.Float64("solar-kw", 0, "Solar capacity in kW")
	evKWh := fs.Float64("ev-kwh", 0, "EV battery capacity in kWh (V2G)")
	strategy := fs.String("strategy", "", "Revenue model ("+strings.Join(revenue.Names(), "|")+"); empty for all")
	_ = fs.Parse(args)

	names := revenue.Names()
	if *strategy != "" {
		names = []string{*strategy}
	}
	assets := revenue.Assets{BatteryKWh: *batteryKWh, SolarKW: *solarKW, EVBatteryKWh: *evKWh}

	fmt.Printf("%-10s %-10s %-10s %-10s %-10s %-10s %-10s\n", "model", "arbitrage", "fcas", "dr", "solar", "v2g", "total")
	for _, name := range names {
		m, err := revenue.FromConfig(revenue.Config{Name: name})
		if err != nil {
			fail(err)
		}
		e := m.Estimate(assets)
		fmt.Printf("%-10s %-10s %-10s %-10s %-10s %-10s %-10s\n",
			m.Name(),
			simulate.FormatMoney(e.Arbitrage),
			simulate.FormatMoney(e.Ancillary),
			simulate.FormatMoney(e.DemandResponse),
			simulate.FormatMoney(e.SolarExport),
			simulate.FormatMoney(e.VehicleToGrid),
			simulate.FormatMoney(e.Total()),
		)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario used as the base")
	top := fs.Int("top", 0, "Show only the best N (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	base, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}

	engine := simulate.New()
	byName := map[string]analysis.Summary{}
	for _, sel := range base.Catalog(nil).Combinations() {
		cfg := *base
		cfg.Packages = sel
		in, err := cfg.Inputs(nil)
		if err != nil {
			fail(err)
		}
		res, err := engine.Run(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", sel, err)
			continue
		}
		byName[sel.String()] = analysis.SummarizeResult(res)
	}

	ranked := analysis.RankScenarios(byName)
	if *top > 0 && *top < len(ranked) {
		ranked = ranked[:*top]
	}
	fmt.Printf("%-4s %-36s %-12s %-12s %-12s %-10s %-8s\n", "rank", "packages", "net", "benefits", "costs", "breakeven", "payback")
	for _, r := range ranked {
		fmt.Printf("%-4d %-36s %-12s %-12s %-12s %-10d %-8.1f\n",
			r.Rank,
			r.Name,
			simulate.FormatMoney(r.NetPosition),
			simulate.FormatMoney(r.TotalBenefits),
			simulate.FormatMoney(r.TotalCosts),
			r.BreakEvenMonth,
			r.PaybackYears,
		)
	}
}

func cmdCatalog(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	file := fs.String("file", "", "Catalog file (Hjson or JSON); built-in range when empty")
	export := fs.String("export", "", "Write the catalog as Hjson to this path")
	_ = fs.Parse(args)

	cat := catalog.Default()
	if *file != "" {
		loaded, err := catalog.Load(*file)
		if err != nil {
			fail(err)
		}
		cat = loaded
	}

	if *export != "" {
		if err := cat.Save(*export); err != nil {
			fail(err)
		}
		fmt.Printf("Wrote catalog to %s\n", *export)
		return
	}

	fmt.Println("EV packages:")
	for _, ev := range cat.EVs {
		fmt.Printf("  %-12s %-20s %6.1f kWh %5d km  v2g=%-5t price=%-10s share=%.0f%%\n",
			ev.Name, ev.Model, ev.BatteryCapacityKWh, ev.RangeKm, ev.V2GCapable, simulate.FormatMoney(ev.Price), ev.ProfitShare*100)
	}
	fmt.Println("Battery packages:")
	for _, b := range cat.Batteries {
		fmt.Printf("  %-12s %6.1f kWh %5.1f kW  cycles=%-6d price=%-10s share=%.0f%%\n",
			b.Name, b.CapacityKWh, b.PeakPowerKW, b.Cycles, simulate.FormatMoney(b.Price), b.ProfitShare*100)
	}
	fmt.Println("Solar packages:")
	for _, s := range cat.Solar {
		fmt.Printf("  %-12s %5.1f kW  panels=%-3d inverter=%4.1f kW  price=%s\n",
			s.Name, s.CapacityKW, s.PanelCount, s.InverterSizeKW, simulate.FormatMoney(s.Price))
	}
}

func cmdRecommend(args []string) {
	fs := flag.NewFlagSet("recommend", flag.ExitOnError)
	commute := fs.Float64("commute", 0, "Daily commute in km")
	bill := fs.Float64("bill", 0, "Monthly power bill")
	roof := fs.Float64("roof", 0, "Usable roof area in m²")
	_ = fs.Parse(args)

	usage := model.UsageProfile{DailyCommuteKm: *commute, MonthlyPowerBill: *bill, RoofAreaM2: *roof}
	if err := usage.Validate(); err != nil {
		fail(err)
	}
	sel := catalog.Recommend(usage)
	fmt.Printf("ev=%s battery=%s solar=%s\n", sel.EV, sel.Battery, sel.Solar)
}

func printSummary(s analysis.Summary) {
	fmt.Printf("Months=%d Upfront=$%s\n", s.Months, simulate.FormatMoney(s.UpfrontCost))
	fmt.Printf("Total costs=$%s Total benefits=$%s Net=$%s\n",
		simulate.FormatMoney(s.TotalCosts), simulate.FormatMoney(s.TotalBenefits), simulate.FormatMoney(s.NetPosition))
	fmt.Printf("First month net=$%s Average monthly net=$%s\n",
		simulate.FormatMoney(s.FirstMonthNet), simulate.FormatMoney(s.AverageMonthlyNet))
	if s.BreakEvenMonth >= 0 {
		fmt.Printf("Break-even month=%d\n", s.BreakEvenMonth)
	} else {
		fmt.Println("Break-even month=never")
	}
	if s.PaybackYears >= 0 {
		fmt.Printf("Simple payback=%.1f years\n", s.PaybackYears)
	}
}

func printAnnual(years []analysis.AnnualSummary) {
	fmt.Printf("%-5s %-12s %-12s %-12s %-12s %-8s %-8s %-8s\n", "year", "costs", "benefits", "net", "cum_net", "batt%", "solar%", "veh%")
	for _, y := range years {
		fmt.Printf("%-5d %-12s %-12s %-12s %-12s %-8.1f %-8.1f %-8.1f\n",
			y.Year,
			simulate.FormatMoney(y.TotalCosts),
			simulate.FormatMoney(y.TotalBenefits),
			simulate.FormatMoney(y.NetPosition),
			simulate.FormatMoney(y.CumulativeNet),
			y.Health.BatteryPct, y.Health.SolarPct, y.Health.VehicleValuePct,
		)
	}
}

func printWaterfall(month int, entries []analysis.WaterfallEntry) {
	fmt.Printf("Waterfall for month %d:\n", month)
	for _, e := range entries {
		fmt.Printf("  %-10s %-24s %12s\n", e.Kind, e.Label, simulate.FormatMoney(e.Amount))
	}
}
