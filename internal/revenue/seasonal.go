package revenue

import (
	"math"

	"energy-package-roi/internal/model"
)

// Required seasonal/time-of-use buckets.
const (
	SummerPeak    = "summer_peak"
	SummerOffPeak = "summer_offpeak"
	WinterPeak    = "winter_peak"
	WinterOffPeak = "winter_offpeak"
)

// RequiredBuckets lists the buckets every seasonal table must define, in evaluation order.
var RequiredBuckets = []string{SummerPeak, SummerOffPeak, WinterPeak, WinterOffPeak}

// LevelLow is the price level treated as charging cost in off-peak buckets.
const LevelLow = "low"

// PriceLevel is one point of a bucket's discrete price distribution ($/kWh).
type PriceLevel struct {
	Level       string  `yaml:"level" json:"level"`
	Price       float64 `yaml:"price" json:"price"`
	Probability float64 `yaml:"probability" json:"probability"`
}

// Bucket is a season/time-of-use window with its price distribution.
type Bucket struct {
	Name    string       `yaml:"name" json:"name"`
	OffPeak bool         `yaml:"off_peak" json:"off_peak"`
	Levels  []PriceLevel `yaml:"levels" json:"levels"`
}

// ExpectedPrice is the probability-weighted price of the bucket.
func (b Bucket) ExpectedPrice() float64 {
	sum := 0.0
	for _, l := range b.Levels {
		sum += l.Price * l.Probability
	}
	return sum
}

// IsOffPeak reports whether the bucket is a charging window. The required
// buckets are classified by name; the flag only applies to extra buckets.
func (b Bucket) IsOffPeak() bool {
	switch b.Name {
	case SummerOffPeak, WinterOffPeak:
		return true
	case SummerPeak, WinterPeak:
		return false
	}
	return b.OffPeak
}

// ResponseTier groups ancillary services by response speed.
type ResponseTier string

const (
	TierFast   ResponseTier = "fast"   // 6 second
	TierMedium ResponseTier = "medium" // 60 second
	TierSlow   ResponseTier = "slow"   // 5 minute
)

// AncillaryService is a frequency-control market with a $/kW/h availability rate.
type AncillaryService struct {
	Name string       `yaml:"name" json:"name"`
	Rate float64      `yaml:"rate" json:"rate"`
	Tier ResponseTier `yaml:"tier" json:"tier"`
}

// DemandTier is a demand-response event severity with its $/kWh payment.
type DemandTier struct {
	Severity      string  `yaml:"severity" json:"severity"`
	Payment       float64 `yaml:"payment" json:"payment"`
	EventsPerYear float64 `yaml:"events_per_year" json:"events_per_year"`
}

// SeasonalModel prices arbitrage against probabilistic seasonal price patterns and
// adds ancillary-service (FCAS) and demand-response streams.
type SeasonalModel struct {
	Efficiency float64
	// BucketDaysPerMonth is how many days per month each bucket contributes.
	BucketDaysPerMonth float64
	Buckets            []Bucket

	Services      []AncillaryService
	Participation map[ResponseTier]float64
	HoursPerDay   float64
	DaysPerMonth  float64
	Availability  float64

	DemandTiers []DemandTier
	Reliability float64

	FeedIn FeedIn
}

// DefaultSeasonal returns the NEM-style price patterns and grid-service rates.
func DefaultSeasonal() *SeasonalModel {
	return &SeasonalModel{
		Efficiency:         0.9,
		BucketDaysPerMonth: 91.25 / 12,
		Buckets:            DefaultBuckets(),
		Services: []AncillaryService{
			{Name: "raise_6s", Rate: 0.08, Tier: TierFast},
			{Name: "raise_60s", Rate: 0.05, Tier: TierMedium},
			{Name: "raise_5min", Rate: 0.03, Tier: TierSlow},
			{Name: "lower_6s", Rate: 0.04, Tier: TierFast},
			{Name: "lower_60s", Rate: 0.03, Tier: TierMedium},
			{Name: "lower_5min", Rate: 0.02, Tier: TierSlow},
		},
		Participation: map[ResponseTier]float64{
			TierFast:   0.10,
			TierMedium: 0.15,
			TierSlow:   0.25,
		},
		HoursPerDay:  24,
		DaysPerMonth: 30,
		Availability: 0.95,
		DemandTiers: []DemandTier{
			{Severity: "extreme", Payment: 2.0, EventsPerYear: 5},
			{Severity: "high", Payment: 1.0, EventsPerYear: 15},
			{Severity: "medium", Payment: 0.5, EventsPerYear: 30},
		},
		Reliability: 0.95,
		FeedIn:      DefaultFeedIn(),
	}
}

func DefaultBuckets() []Bucket {
	return []Bucket{
		{Name: SummerPeak, Levels: []PriceLevel{
			{Level: "extreme", Price: 15.0, Probability: 0.02},
			{Level: "high", Price: 0.45, Probability: 0.15},
			{Level: "medium", Price: 0.32, Probability: 0.33},
			{Level: "low", Price: 0.25, Probability: 0.50},
		}},
		{Name: SummerOffPeak, OffPeak: true, Levels: []PriceLevel{
			{Level: "high", Price: 0.15, Probability: 0.10},
			{Level: "medium", Price: 0.08, Probability: 0.40},
			{Level: "low", Price: 0.03, Probability: 0.50},
		}},
		{Name: WinterPeak, Levels: []PriceLevel{
			{Level: "extreme", Price: 8.0, Probability: 0.01},
			{Level: "high", Price: 0.38, Probability: 0.20},
			{Level: "medium", Price: 0.28, Probability: 0.30},
			{Level: "low", Price: 0.22, Probability: 0.49},
		}},
		{Name: WinterOffPeak, OffPeak: true, Levels: []PriceLevel{
			{Level: "high", Price: 0.12, Probability: 0.15},
			{Level: "medium", Price: 0.06, Probability: 0.35},
			{Level: "low", Price: 0.03, Probability: 0.50},
		}},
	}
}

func (m *SeasonalModel) Name() string { return "seasonal" }

func (m *SeasonalModel) Validate() error {
	if err := firstErr(
		fraction("revenue.efficiency", m.Efficiency),
		positive("revenue.bucket_days_per_month", m.BucketDaysPerMonth),
		positive("revenue.days_per_month", m.DaysPerMonth),
		nonNegative("revenue.hours_per_day", m.HoursPerDay),
		fraction("revenue.availability", m.Availability),
		fraction("revenue.reliability", m.Reliability),
		m.FeedIn.validate(),
	); err != nil {
		return err
	}
	if m.HoursPerDay > 24 {
		return model.Invalid("revenue.hours_per_day", "must be <= 24")
	}

	seen := make(map[string]bool, len(m.Buckets))
	for _, b := range m.Buckets {
		if seen[b.Name] {
			return model.Invalid("revenue.buckets."+b.Name, "defined more than once")
		}
		seen[b.Name] = true
		if len(b.Levels) == 0 {
			return model.Invalid("revenue.buckets."+b.Name, "has no price levels")
		}
		total := 0.0
		for _, l := range b.Levels {
			field := "revenue.buckets." + b.Name + "." + l.Level
			if err := firstErr(nonNegative(field+".price", l.Price), fraction(field+".probability", l.Probability)); err != nil {
				return err
			}
			total += l.Probability
		}
		if math.Abs(total-1) > 1e-6 {
			return model.Invalid("revenue.buckets."+b.Name, "probabilities must sum to 1")
		}
	}
	for _, name := range RequiredBuckets {
		if !seen[name] {
			return model.Invalid("revenue.buckets."+name, "is required")
		}
	}

	for _, tier := range []ResponseTier{TierFast, TierMedium, TierSlow} {
		p, ok := m.Participation[tier]
		if !ok {
			return model.Invalid("revenue.participation."+string(tier), "is required")
		}
		if err := fraction("revenue.participation."+string(tier), p); err != nil {
			return err
		}
	}
	if m.Participation[TierFast] > m.Participation[TierMedium] || m.Participation[TierMedium] > m.Participation[TierSlow] {
		return model.Invalid("revenue.participation", "must not decrease from fast to slow tiers")
	}
	for _, s := range m.Services {
		if _, ok := m.Participation[s.Tier]; !ok {
			return model.Invalid("revenue.services."+s.Name+".tier", "unknown response tier")
		}
		if err := nonNegative("revenue.services."+s.Name+".rate", s.Rate); err != nil {
			return err
		}
	}
	for _, d := range m.DemandTiers {
		field := "revenue.demand_tiers." + d.Severity
		if err := firstErr(nonNegative(field+".payment", d.Payment), nonNegative(field+".events_per_year", d.EventsPerYear)); err != nil {
			return err
		}
	}
	return nil
}

// MonthlyArbitrage sums expected daily trading value across buckets. Off-peak
// "low" levels are charging cost and are subtracted without the efficiency loss.
func (m *SeasonalModel) MonthlyArbitrage(capacityKWh float64) float64 {
	if capacityKWh <= 0 {
		return 0
	}
	monthly := 0.0
	for _, b := range m.Buckets {
		daily := 0.0
		offPeak := b.IsOffPeak()
		for _, l := range b.Levels {
			if offPeak && l.Level == LevelLow {
				daily -= capacityKWh * l.Price * l.Probability
				continue
			}
			daily += capacityKWh * l.Price * l.Probability * m.Efficiency
		}
		monthly += daily * m.BucketDaysPerMonth
	}
	return monthly
}

// MonthlyFCASRevenue is the availability payment for capacity offered to each service.
func (m *SeasonalModel) MonthlyFCASRevenue(capacityKWh float64) float64 {
	if capacityKWh <= 0 {
		return 0
	}
	monthly := 0.0
	for _, s := range m.Services {
		committed := capacityKWh * m.Participation[s.Tier]
		monthly += committed * s.Rate * m.HoursPerDay * m.DaysPerMonth * m.Availability
	}
	return monthly
}

func (m *SeasonalModel) MonthlyDemandResponseRevenue(capacityKWh float64) float64 {
	if capacityKWh <= 0 {
		return 0
	}
	annual := 0.0
	for _, d := range m.DemandTiers {
		annual += capacityKWh * d.Payment * m.Reliability * d.EventsPerYear
	}
	return annual / 12
}

func (m *SeasonalModel) Estimate(a Assets) Estimate {
	return estimate(m, m.FeedIn, m.DaysPerMonth, a)
}

// BucketPrice is the display summary of one bucket.
type BucketPrice struct {
	Bucket        string       `json:"bucket"`
	OffPeak       bool         `json:"off_peak"`
	ExpectedPrice float64      `json:"expected_price"`
	Levels        []PriceLevel `json:"levels"`
}

// PriceSummary lists each bucket's expected price in evaluation order.
func (m *SeasonalModel) PriceSummary() []BucketPrice {
	out := make([]BucketPrice, 0, len(m.Buckets))
	for _, b := range m.Buckets {
		out = append(out, BucketPrice{
			Bucket:        b.Name,
			OffPeak:       b.IsOffPeak(),
			ExpectedPrice: b.ExpectedPrice(),
			Levels:        append([]PriceLevel(nil), b.Levels...),
		})
	}
	return out
}
