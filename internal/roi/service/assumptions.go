// Package service runs the financial projection: assumption resolution,
// cost model, 25-year savings loop, financing, monthly cash flow and the
// purchase score.
package service

import (
	"solar_roi_backend/internal/catalog"
	"solar_roi_backend/internal/incentives"
	"solar_roi_backend/internal/rates"
	"solar_roi_backend/internal/roi/transport"
)

// defaultFinancingType is used when the caller does not pick one.
const defaultFinancingType = "loan10"

// Assumptions are the fully resolved modeling inputs. Every field is a
// concrete value; all projection arithmetic runs on this struct only.
type Assumptions struct {
	CostPerWatt         float64
	FederalITC          float64
	StateCreditRate     float64
	StateCreditMax      float64
	LocalRebate         float64
	EnergyRate          float64
	RateIncrease        float64
	Degradation         float64
	Maintenance         float64
	HomeValueMultiplier float64
	CurrentMonthlyBill  float64
	CurrentHomeValue    float64
	AnalysisYears       int

	FinancingType string
	LoanRate      float64
	LoanTermYears int
	Presets       map[string]catalog.FinancingOption
}

// ResolveAssumptions merges caller overrides with catalog defaults, the
// resolved energy rate, the state growth history and the incentive result.
// Caller values always win; everything unset falls back to the catalog.
func ResolveAssumptions(
	raw transport.RawAssumptions,
	cat *catalog.Catalog,
	rate rates.EnergyRate,
	growth catalog.GrowthRate,
	inc incentives.Result,
) Assumptions {
	system := cat.System

	a := Assumptions{
		CostPerWatt:         cat.Costs.Residential,
		FederalITC:          system.FederalITC,
		LocalRebate:         inc.AppliedRebate,
		EnergyRate:          rate.RatePerKWh,
		RateIncrease:        growth.Rate,
		Degradation:         system.PanelDegradation,
		Maintenance:         system.AnnualMaintenance,
		HomeValueMultiplier: system.HomeValueMultiplier,
		AnalysisYears:       system.AnalysisYears,
		Presets:             cat.Financing,
	}

	if inc.StateCredit != nil {
		a.StateCreditRate = inc.StateCredit.TaxCreditRate
		a.StateCreditMax = inc.StateCredit.MaxCredit
	}

	a.CostPerWatt = resolveCostPerWatt(raw, cat)

	if raw.FederalITC != nil {
		a.FederalITC = *raw.FederalITC
	}
	if raw.EnergyRate != nil {
		a.EnergyRate = *raw.EnergyRate
	}
	if raw.AnnualRateIncrease != nil {
		a.RateIncrease = *raw.AnnualRateIncrease
	}
	if raw.PanelDegradation != nil {
		a.Degradation = *raw.PanelDegradation
	}
	if raw.AnnualMaintenance != nil {
		a.Maintenance = *raw.AnnualMaintenance
	}
	if raw.HomeValueMultiplier != nil {
		a.HomeValueMultiplier = *raw.HomeValueMultiplier
	}
	if raw.CurrentMonthlyBill != nil {
		a.CurrentMonthlyBill = *raw.CurrentMonthlyBill
	}
	if raw.CurrentHomeValue != nil {
		a.CurrentHomeValue = *raw.CurrentHomeValue
	}

	a.FinancingType = raw.FinancingType
	if a.FinancingType == "" {
		a.FinancingType = defaultFinancingType
	}

	base, ok := cat.FinancingFor(a.FinancingType)
	if !ok {
		// "custom" and unknown keys start from the default loan terms.
		base, _ = cat.FinancingFor(defaultFinancingType)
	}
	a.LoanRate = base.Rate
	a.LoanTermYears = base.TermYears
	if raw.LoanRate != nil {
		a.LoanRate = *raw.LoanRate
	}
	if raw.LoanTermYears != nil {
		a.LoanTermYears = *raw.LoanTermYears
	}

	return a
}

// resolveCostPerWatt picks the installed cost: an explicit per-watt figure
// wins, then a per-panel price divided by the panel wattage, then the
// catalog's residential tier.
func resolveCostPerWatt(raw transport.RawAssumptions, cat *catalog.Catalog) float64 {
	if raw.CostPerWatt != nil {
		return *raw.CostPerWatt
	}
	if raw.CostPerPanel != nil {
		wattage := cat.System.PanelWattage
		if raw.PanelWattage != nil && *raw.PanelWattage > 0 {
			wattage = *raw.PanelWattage
		}
		if wattage > 0 {
			return *raw.CostPerPanel / wattage
		}
	}
	return cat.Costs.Residential
}
