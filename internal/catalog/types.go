package catalog

// CityRate is a known residential rate for a specific city.
type CityRate struct {
	Rate    float64 `yaml:"rate"`
	Utility string  `yaml:"utility"`
}

// GrowthRate is the historical electricity rate growth for a state.
type GrowthRate struct {
	Rate   float64 `yaml:"rate"`
	Years  string  `yaml:"years"`
	Source string  `yaml:"source"`
}

// StateCredit describes a state-level tax incentive.
type StateCredit struct {
	Name              string  `yaml:"name"`
	PropertyTaxExempt bool    `yaml:"propertyTaxExempt"`
	TaxCreditRate     float64 `yaml:"taxCreditRate"`
	MaxCredit         float64 `yaml:"maxCredit"`
	Description       string  `yaml:"description"`
}

// Program value types. perWattHour programs are storage-specific and are
// surfaced as informational only (no dollar estimate).
const (
	ValuePerWatt     = "perWatt"
	ValueFlat        = "flat"
	ValueBillCredit  = "billCredit"
	ValuePerWattHour = "perWattHour"
)

// Program is a utility or municipal incentive program.
// An empty Cities list means the program applies state-wide.
type Program struct {
	Name        string   `yaml:"name"`
	Provider    string   `yaml:"provider"`
	Type        string   `yaml:"type"`
	Description string   `yaml:"description"`
	ValueType   string   `yaml:"valueType"`
	Value       float64  `yaml:"value"`
	MaxValue    float64  `yaml:"maxValue"`
	Cities      []string `yaml:"cities"`
	AppliesTo   string   `yaml:"appliesTo"`
}

// VendorProgram is an installer/vendor promotion. Value is either a flat
// dollar estimate or a percentage of the gross system cost.
type VendorProgram struct {
	Name                  string  `yaml:"name"`
	Provider              string  `yaml:"provider"`
	Description           string  `yaml:"description"`
	EstimatedValue        float64 `yaml:"estimatedValue"`
	EstimatedValuePercent float64 `yaml:"estimatedValuePercent"`
}

// FinancingOption is a financing preset. A zero term means cash purchase.
type FinancingOption struct {
	Name        string  `yaml:"name"`
	Rate        float64 `yaml:"rate"`
	TermYears   int     `yaml:"term"`
	Description string  `yaml:"description"`
}

// SystemAssumptions are the physical and financial modeling defaults.
type SystemAssumptions struct {
	PanelDegradation      float64 `yaml:"panelDegradation"`
	PanelWarrantyYears    int     `yaml:"panelWarranty"`
	InverterWarrantyYears int     `yaml:"inverterWarranty"`
	InverterReplacement   float64 `yaml:"inverterReplacement"`
	AnnualMaintenance     float64 `yaml:"annualMaintenance"`
	HomeValueMultiplier   float64 `yaml:"homeValueMultiplier"`
	AnalysisYears         int     `yaml:"analysisYears"`
	PanelWattage          float64 `yaml:"panelWattage"`
	PanelAreaSqMeters     float64 `yaml:"panelAreaSqMeters"`
	FederalITC            float64 `yaml:"federalITC"`
}

// CostTiers are installed system cost defaults in $/watt.
type CostTiers struct {
	Residential float64 `yaml:"residential"`
	Premium     float64 `yaml:"premium"`
	Budget      float64 `yaml:"budget"`
}
