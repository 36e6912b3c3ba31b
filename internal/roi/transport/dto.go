// Package transport defines the wire types for the ROI endpoints.
package transport

// RawAssumptions are the homeowner-tunable inputs. Every field is optional;
// unset fields resolve to catalog defaults before any arithmetic happens.
type RawAssumptions struct {
	CostPerWatt         *float64 `json:"costPerWatt" binding:"omitempty,gt=0"`
	CostPerPanel        *float64 `json:"costPerPanel" binding:"omitempty,gt=0"`
	PanelWattage        *float64 `json:"panelWattage" binding:"omitempty,gt=0"`
	FederalITC          *float64 `json:"federalITC" binding:"omitempty,gte=0,lte=1"`
	LocalRebate         *float64 `json:"localRebate"`
	EnergyRate          *float64 `json:"energyRate" binding:"omitempty,gt=0"`
	AnnualRateIncrease  *float64 `json:"annualRateIncrease" binding:"omitempty,gte=0,lte=1"`
	PanelDegradation    *float64 `json:"panelDegradation" binding:"omitempty,gte=0,lte=1"`
	AnnualMaintenance   *float64 `json:"annualMaintenance" binding:"omitempty,gte=0"`
	HomeValueMultiplier *float64 `json:"homeValueMultiplier" binding:"omitempty,gte=0"`
	CurrentMonthlyBill  *float64 `json:"currentMonthlyBill" binding:"omitempty,gt=0"`
	CurrentHomeValue    *float64 `json:"currentHomeValue" binding:"omitempty,gt=0"`
	FinancingType       string   `json:"financingType" binding:"omitempty,oneof=cash loan10 loan15 loan20 custom"`
	LoanRate            *float64 `json:"loanRate" binding:"omitempty,gte=0,lte=1"`
	LoanTermYears       *int     `json:"loanTerm" binding:"omitempty,gt=0,lte=40"`
}

// CalculateRequest is the ROI calculation payload.
type CalculateRequest struct {
	SystemSizeKW        float64        `json:"systemSizeKW" binding:"required,gt=0"`
	AnnualProduction    float64        `json:"annualProduction" binding:"required,gt=0"`
	ZipCode             string         `json:"zipCode"`
	State               string         `json:"state" binding:"required,len=2"`
	City                string         `json:"city"`
	SelectedSegments    []int          `json:"selectedSegments"`
	OverallShadePercent *int           `json:"overallShadePercent" binding:"omitempty,gte=0,lte=100"`
	UserInputs          RawAssumptions `json:"userInputs"`
}
