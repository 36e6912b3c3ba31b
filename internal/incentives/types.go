package incentives

import "solar_roi_backend/internal/catalog"

// EstimatedProgram is an incentive program with its dollar value worked out
// for a specific system.
type EstimatedProgram struct {
	Name           string  `json:"name"`
	Provider       string  `json:"provider"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	ValueType      string  `json:"valueType"`
	Value          float64 `json:"value"`
	MaxValue       float64 `json:"maxValue,omitempty"`
	EstimatedValue float64 `json:"estimatedValue"`
	Informational  bool    `json:"informational,omitempty"`
	AppliesTo      string  `json:"appliesTo,omitempty"`
}

// VendorOffer is an installer promotion with a dollar estimate.
type VendorOffer struct {
	Name           string  `json:"name"`
	Provider       string  `json:"provider"`
	Description    string  `json:"description"`
	EstimatedValue float64 `json:"estimatedValue"`
}

// Result is the full incentive picture for one system at one location.
// AppliedRebate reduces the net system cost; potential programs are
// surfaced for the homeowner but never double-counted into the cost model.
type Result struct {
	AppliedRebate  float64              `json:"appliedRebate"`
	AppliedProgram *EstimatedProgram    `json:"appliedProgram,omitempty"`
	OverrideUsed   bool                 `json:"overrideUsed,omitempty"`
	Potential      []EstimatedProgram   `json:"potential"`
	Informational  []EstimatedProgram   `json:"informational,omitempty"`
	VendorOffers   []VendorOffer        `json:"vendorOffers"`
	StateCredit    *catalog.StateCredit `json:"stateCredit,omitempty"`
}

// System describes the inputs incentive values depend on.
type System struct {
	SizeWatts         float64
	AnnualKWh         float64
	GrossCost         float64
	RebateOverride    float64
	HasRebateOverride bool
}
