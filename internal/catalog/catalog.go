package catalog

import (
	"fmt"
	"os"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"

	"energy-package-roi/internal/model"
)

// Catalog is the read-only list of packages on offer. Entries keep file order.
type Catalog struct {
	EVs       []model.EVSpec      `json:"evs"`
	Batteries []model.BatterySpec `json:"batteries"`
	Solar     []model.SolarSpec   `json:"solar"`
}

// Selection names one package of each kind. An empty name (or "none") omits that asset.
type Selection struct {
	EV      string `yaml:"ev" json:"ev"`
	Battery string `yaml:"battery" json:"battery"`
	Solar   string `yaml:"solar" json:"solar"`
}

func (s Selection) String() string {
	return fmt.Sprintf("ev=%s battery=%s solar=%s", orNone(s.EV), orNone(s.Battery), orNone(s.Solar))
}

func orNone(name string) string {
	if isNone(name) {
		return "none"
	}
	return name
}

func isNone(name string) bool {
	n := strings.TrimSpace(name)
	return n == "" || strings.EqualFold(n, "none")
}

// Load reads a catalog file. Hjson is a superset of JSON, so both formats are accepted.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := hjson.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the catalog as Hjson.
func (c *Catalog) Save(path string) error {
	out, err := hjson.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(out, '\n'), 0o644)
}

func (c *Catalog) Validate() error {
	if c == nil {
		return model.Invalid("catalog", "is nil")
	}
	seen := map[string]bool{}
	check := func(kind, name string, err error) error {
		if err != nil {
			return fmt.Errorf("%s %q: %w", kind, name, err)
		}
		if strings.TrimSpace(name) == "" {
			return model.Invalid(kind+".name", "is required")
		}
		key := kind + "/" + strings.ToLower(name)
		if seen[key] {
			return model.Invalid(kind+".name", fmt.Sprintf("duplicate package %q", name))
		}
		seen[key] = true
		return nil
	}
	for _, s := range c.EVs {
		if err := check("ev", s.Name, s.Validate()); err != nil {
			return err
		}
	}
	for _, s := range c.Batteries {
		if err := check("battery", s.Name, s.Validate()); err != nil {
			return err
		}
	}
	for _, s := range c.Solar {
		if err := check("solar", s.Name, s.Validate()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) EV(name string) (model.EVSpec, bool) {
	for _, s := range c.EVs {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return model.EVSpec{}, false
}

func (c *Catalog) Battery(name string) (model.BatterySpec, bool) {
	for _, s := range c.Batteries {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return model.BatterySpec{}, false
}

func (c *Catalog) SolarPackage(name string) (model.SolarSpec, bool) {
	for _, s := range c.Solar {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return model.SolarSpec{}, false
}

// Resolve looks up every package in sel. Unknown names are configuration errors.
func (c *Catalog) Resolve(sel Selection) (model.EVSpec, model.BatterySpec, model.SolarSpec, error) {
	var (
		ev    model.EVSpec
		batt  model.BatterySpec
		solar model.SolarSpec
		ok    bool
	)
	if !isNone(sel.EV) {
		if ev, ok = c.EV(sel.EV); !ok {
			return ev, batt, solar, model.Invalid("packages.ev", fmt.Sprintf("unknown package %q", sel.EV))
		}
	}
	if !isNone(sel.Battery) {
		if batt, ok = c.Battery(sel.Battery); !ok {
			return ev, batt, solar, model.Invalid("packages.battery", fmt.Sprintf("unknown package %q", sel.Battery))
		}
	}
	if !isNone(sel.Solar) {
		if solar, ok = c.SolarPackage(sel.Solar); !ok {
			return ev, batt, solar, model.Invalid("packages.solar", fmt.Sprintf("unknown package %q", sel.Solar))
		}
	}
	return ev, batt, solar, nil
}

// Combinations lists every EV × battery × solar selection in catalog order.
func (c *Catalog) Combinations() []Selection {
	out := make([]Selection, 0, len(c.EVs)*len(c.Batteries)*len(c.Solar))
	for _, ev := range c.EVs {
		for _, b := range c.Batteries {
			for _, s := range c.Solar {
				out = append(out, Selection{EV: ev.Name, Battery: b.Name, Solar: s.Name})
			}
		}
	}
	return out
}
