package rates

// EnergyRate is a resolved residential electricity rate.
type EnergyRate struct {
	RatePerKWh float64 `json:"rate"`
	Source     string  `json:"source"`
	Utility    string  `json:"utility"`
	IsEstimate bool    `json:"isEstimate"`
	TariffName string  `json:"tariffName,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// openEIResponse mirrors the utility-rate database payload.
type openEIResponse struct {
	Items []openEIItem `json:"items"`
}

type openEIItem struct {
	Name                string           `json:"name"`
	Utility             string           `json:"utility"`
	Sector              string           `json:"sector"`
	EnergyRateStructure []openEIRateTier `json:"energyratestructure"`
}

type openEIRateTier struct {
	Rate float64 `json:"rate"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}
