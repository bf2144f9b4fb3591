package revenue

import (
	"fmt"
	"strings"

	"energy-package-roi/internal/model"
)

// Config selects and tunes a revenue model. Zero-valued fields keep the
// model's defaults, so an empty Config with a Name is a complete selection.
type Config struct {
	Name string `yaml:"name" json:"name"`

	Efficiency   float64 `yaml:"efficiency,omitempty" json:"efficiency,omitempty"`
	DaysPerMonth float64 `yaml:"days_per_month,omitempty" json:"days_per_month,omitempty"`

	// spread
	PeakTariff    float64 `yaml:"peak_tariff,omitempty" json:"peak_tariff,omitempty"`
	OffPeakTariff float64 `yaml:"off_peak_tariff,omitempty" json:"off_peak_tariff,omitempty"`

	// seasonal
	Buckets      []Bucket `yaml:"buckets,omitempty" json:"buckets,omitempty"`
	Availability float64  `yaml:"availability,omitempty" json:"availability,omitempty"`
	Reliability  float64  `yaml:"reliability,omitempty" json:"reliability,omitempty"`

	FeedIn *FeedIn `yaml:"feed_in,omitempty" json:"feed_in,omitempty"`
}

// Names lists the selectable model names.
func Names() []string { return []string{"spread", "seasonal"} }

// FromConfig builds and validates the model named by c.Name ("" means seasonal).
func FromConfig(c Config) (Model, error) {
	var m Model
	switch strings.ToLower(strings.TrimSpace(c.Name)) {
	case "spread":
		s := DefaultSpread()
		if c.Efficiency != 0 {
			s.Efficiency = c.Efficiency
		}
		if c.DaysPerMonth != 0 {
			s.DaysPerMonth = c.DaysPerMonth
		}
		if c.PeakTariff != 0 {
			s.PeakTariff = c.PeakTariff
		}
		if c.OffPeakTariff != 0 {
			s.OffPeakTariff = c.OffPeakTariff
		}
		if c.FeedIn != nil {
			s.FeedIn = *c.FeedIn
		}
		m = s
	case "seasonal", "":
		s := DefaultSeasonal()
		if c.Efficiency != 0 {
			s.Efficiency = c.Efficiency
		}
		if c.DaysPerMonth != 0 {
			s.DaysPerMonth = c.DaysPerMonth
		}
		if len(c.Buckets) > 0 {
			s.Buckets = c.Buckets
		}
		if c.Availability != 0 {
			s.Availability = c.Availability
		}
		if c.Reliability != 0 {
			s.Reliability = c.Reliability
		}
		if c.FeedIn != nil {
			s.FeedIn = *c.FeedIn
		}
		m = s
	default:
		return nil, model.Invalid("revenue.name", fmt.Sprintf("unknown model %q (expected spread or seasonal)", c.Name))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return model.Invalid(field, "must be >= 0")
	}
	return nil
}

func positive(field string, v float64) error {
	if v <= 0 {
		return model.Invalid(field, "must be > 0")
	}
	return nil
}

func fraction(field string, v float64) error {
	if v < 0 || v > 1 {
		return model.Invalid(field, "must be in [0, 1]")
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
