// Package catalog holds the static reference data the estimation modules
// depend on: electricity rates, incentive programs and system modeling
// defaults. The data ships embedded with the binary and is loaded once at
// startup, then injected into the modules that need it.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Catalog is the loaded reference dataset. It is read-only after Load.
type Catalog struct {
	StateRates     map[string]float64             `yaml:"stateRates"`
	CityRates      map[string]map[string]CityRate `yaml:"cityRates"`
	MajorUtilities map[string][]string            `yaml:"majorUtilities"`
	Growth         map[string]GrowthRate          `yaml:"growth"`

	StateCredits   map[string]StateCredit     `yaml:"stateCredits"`
	Programs       map[string][]Program       `yaml:"programs"`
	VendorPrograms map[string][]VendorProgram `yaml:"vendorPrograms"`

	System    SystemAssumptions          `yaml:"system"`
	Costs     CostTiers                  `yaml:"costs"`
	Financing map[string]FinancingOption `yaml:"financing"`
}

// fallbackKey is the catch-all entry used when a state has no dedicated data.
const fallbackKey = "DEFAULT"

// nationalAverageRate is used when a state code is unknown entirely.
const nationalAverageRate = 0.1399

// Load parses the embedded data files into a Catalog.
func Load() (*Catalog, error) {
	cat := &Catalog{}
	for _, name := range []string{"data/rates.yaml", "data/incentives.yaml", "data/system.yaml"} {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("catalog: read %s: %w", name, err)
		}
		if err := yaml.Unmarshal(raw, cat); err != nil {
			return nil, fmt.Errorf("catalog: parse %s: %w", name, err)
		}
	}

	if len(cat.StateRates) == 0 {
		return nil, fmt.Errorf("catalog: no state rates loaded")
	}
	if cat.System.AnalysisYears == 0 {
		return nil, fmt.Errorf("catalog: system assumptions missing")
	}
	if _, ok := cat.Growth[fallbackKey]; !ok {
		return nil, fmt.Errorf("catalog: growth data missing %s entry", fallbackKey)
	}
	return cat, nil
}

// MustLoad is Load for composition roots and tests where embedded data
// failing to parse is a programming error.
func MustLoad() *Catalog {
	cat, err := Load()
	if err != nil {
		panic(err)
	}
	return cat
}

// StateRate returns the average residential rate for a state and whether
// the state was known. Unknown states get the national average.
func (c *Catalog) StateRate(state string) (float64, bool) {
	if rate, ok := c.StateRates[state]; ok {
		return rate, true
	}
	return nationalAverageRate, false
}

// CityRate returns the known rate entry for a city, if any.
func (c *Catalog) CityRate(state, city string) (CityRate, bool) {
	cities, ok := c.CityRates[state]
	if !ok {
		return CityRate{}, false
	}
	entry, ok := cities[city]
	return entry, ok
}

// UtilitiesFor returns the major utilities serving a state.
func (c *Catalog) UtilitiesFor(state string) []string {
	return c.MajorUtilities[state]
}

// GrowthFor returns the historical rate growth for a state, falling back
// to the national average entry.
func (c *Catalog) GrowthFor(state string) GrowthRate {
	if g, ok := c.Growth[state]; ok {
		return g
	}
	return c.Growth[fallbackKey]
}

// CreditFor returns the state tax credit, if the state has one.
func (c *Catalog) CreditFor(state string) (StateCredit, bool) {
	credit, ok := c.StateCredits[state]
	return credit, ok
}

// ProgramsFor returns the incentive programs for a state, falling back to
// the generic national programs.
func (c *Catalog) ProgramsFor(state string) []Program {
	if programs, ok := c.Programs[state]; ok {
		return programs
	}
	return c.Programs[fallbackKey]
}

// VendorFor returns the vendor promotions for a state, falling back to the
// national defaults.
func (c *Catalog) VendorFor(state string) []VendorProgram {
	if programs, ok := c.VendorPrograms[state]; ok {
		return programs
	}
	return c.VendorPrograms[fallbackKey]
}

// FinancingFor returns a financing preset by key (cash, loan10, loan15,
// loan20).
func (c *Catalog) FinancingFor(key string) (FinancingOption, bool) {
	option, ok := c.Financing[key]
	return option, ok
}
