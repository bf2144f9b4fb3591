package simulate

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func WriteRecordsCSV(path string, records []MonthlyRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteRecords(f, records)
}

// WriteRecords writes one row per month with every breakdown line and a running net total.
func WriteRecords(out io.Writer, records []MonthlyRecord) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"month",
		"year",
		"period",
		"bundle_loan",
		"vehicle_finance",
		"charging",
		"provider_share",
		"vehicle_service",
		"tyres",
		"battery_service",
		"solar_cleaning",
		"inverter_replacement",
		"total_costs",
		"arbitrage",
		"ancillary",
		"demand_response",
		"solar_export",
		"vehicle_to_grid",
		"power_bill_savings",
		"fuel_savings",
		"lease_tax_benefit",
		"total_benefits",
		"battery_health_pct",
		"solar_health_pct",
		"vehicle_value_pct",
		"net_position",
		"cum_net_position",
		"events",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	cum := 0.0
	for _, r := range records {
		cum += r.NetPosition
		c, b := r.Costs, r.Benefits

		period := ""
		if r.Period != nil {
			period = r.Period.String()
		}
		events := make([]string, len(r.Events))
		for i, e := range r.Events {
			events[i] = string(e)
		}

		row := []string{
			strconv.Itoa(r.Month),
			strconv.FormatFloat(r.Year, 'f', 4, 64),
			period,
			FormatMoney(c.BundleLoan),
			FormatMoney(c.VehicleFinance),
			FormatMoney(c.Charging),
			FormatMoney(c.ProviderShare),
			FormatMoney(c.VehicleService),
			FormatMoney(c.Tyres),
			FormatMoney(c.BatteryService),
			FormatMoney(c.SolarCleaning),
			FormatMoney(c.InverterReplacement),
			FormatMoney(c.Total()),
			FormatMoney(b.Arbitrage),
			FormatMoney(b.Ancillary),
			FormatMoney(b.DemandResponse),
			FormatMoney(b.SolarExport),
			FormatMoney(b.VehicleToGrid),
			FormatMoney(b.PowerBillSavings),
			FormatMoney(b.FuelSavings),
			FormatMoney(b.LeaseTaxBenefit),
			FormatMoney(b.Total()),
			fmtPct(r.Health.BatteryPct),
			fmtPct(r.Health.SolarPct),
			fmtPct(r.Health.VehicleValuePct),
			FormatMoney(r.NetPosition),
			FormatMoney(cum),
			strings.Join(events, ";"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// FormatMoney rounds to cents half away from zero.
func FormatMoney(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

func fmtPct(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
