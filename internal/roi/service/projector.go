package service

import "math"

// Costs is the upfront cost picture after credits and rebates.
type Costs struct {
	GrossCost        float64 `json:"grossCost"`
	CostPerWatt      float64 `json:"costPerWatt"`
	FederalTaxCredit float64 `json:"federalTaxCredit"`
	StateTaxCredit   float64 `json:"stateTaxCredit"`
	LocalRebate      float64 `json:"localRebate"`
	NetCost          float64 `json:"netCost"`
}

// LifetimeROI is the multi-year savings projection.
type LifetimeROI struct {
	Years            int     `json:"years"`
	TotalSavings     float64 `json:"totalSavings"`
	TotalMaintenance float64 `json:"totalMaintenance"`
	NetProfit        float64 `json:"netProfit"`
	ROI              float64 `json:"roi"`
}

// FinancingSummary is one financing option priced against the net cost.
type FinancingSummary struct {
	Name           string  `json:"name"`
	Rate           float64 `json:"rate"`
	TermYears      int     `json:"termYears"`
	DownPayment    float64 `json:"downPayment"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Projection is the full financial result for one system.
type Projection struct {
	SystemSizeKW      float64                     `json:"systemSizeKW"`
	AnnualProduction  float64                     `json:"annualProduction"`
	AnnualSavings     float64                     `json:"annualSavings"`
	Costs             Costs                       `json:"costs"`
	PaybackPeriod     *float64                    `json:"paybackPeriod"`
	ROI25Year         LifetimeROI                 `json:"roi25Year"`
	HomeValueIncrease float64                     `json:"homeValueIncrease"`
	NewHomeValue      float64                     `json:"newHomeValue,omitempty"`
	FinancingOptions  map[string]FinancingSummary `json:"financingOptions"`
	FinancingType     string                      `json:"financingType"`
}

// DuringLoanPhase is the monthly cash flow while the loan runs.
type DuringLoanPhase struct {
	LoanPayment       float64 `json:"loanPayment"`
	ElectricBill      float64 `json:"electricBill"`
	SolarSavings      float64 `json:"solarSavings"`
	MaintenanceCost   float64 `json:"maintenanceCost"`
	NetCost           float64 `json:"netCost"`
	VsNoSolar         float64 `json:"vsNoSolar"`
	ExtraCostForSolar float64 `json:"extraCostForSolar"`
}

// AfterLoanPhase is the monthly cash flow once the loan is paid off.
type AfterLoanPhase struct {
	LoanPayment     float64 `json:"loanPayment"`
	ElectricBill    float64 `json:"electricBill"`
	SolarSavings    float64 `json:"solarSavings"`
	MaintenanceCost float64 `json:"maintenanceCost"`
	NetCost         float64 `json:"netCost"`
	VsNoSolar       float64 `json:"vsNoSolar"`
	MonthlySavings  float64 `json:"monthlySavings"`
}

// MonthlyBreakdown splits the homeowner's monthly economics into the loan
// years and the years after payoff.
type MonthlyBreakdown struct {
	DuringLoan           DuringLoanPhase `json:"duringLoan"`
	AfterLoan            AfterLoanPhase  `json:"afterLoan"`
	LoanTermYears        int             `json:"loanTerm"`
	MonthlySavings       float64         `json:"monthlySavings"`
	EstimatedMonthlyBill float64         `json:"estimatedMonthlyBill"`
}

// Projector runs the cost model and savings loop on resolved assumptions.
// All paths tolerate degenerate inputs (zero cost, zero rate, free system)
// and never divide by zero.
type Projector struct {
	a Assumptions
}

func NewProjector(a Assumptions) *Projector {
	return &Projector{a: a}
}

// Project builds the full projection for a system. annualProductionKWh is
// the shading-adjusted first-year production.
func (p *Projector) Project(systemSizeKW, annualProductionKWh float64) Projection {
	a := p.a
	watts := systemSizeKW * 1000

	gross := watts * a.CostPerWatt
	federal := gross * a.FederalITC
	state := 0.0
	if a.StateCreditRate > 0 {
		state = gross * a.StateCreditRate
		if a.StateCreditMax > 0 {
			state = math.Min(state, a.StateCreditMax)
		}
	}
	net := math.Max(0, gross-federal-state-a.LocalRebate)

	costs := Costs{
		GrossCost:        math.Round(gross),
		CostPerWatt:      a.CostPerWatt,
		FederalTaxCredit: math.Round(federal),
		StateTaxCredit:   math.Round(state),
		LocalRebate:      math.Round(a.LocalRebate),
		NetCost:          math.Round(net),
	}

	annualSavings := roundCents(annualProductionKWh * a.EnergyRate)

	projection := Projection{
		SystemSizeKW:      systemSizeKW,
		AnnualProduction:  math.Round(annualProductionKWh),
		AnnualSavings:     annualSavings,
		Costs:             costs,
		PaybackPeriod:     payback(costs.NetCost, annualSavings, a.Maintenance),
		ROI25Year:         p.lifetime(annualProductionKWh, costs.NetCost),
		HomeValueIncrease: math.Round(watts * a.HomeValueMultiplier),
		FinancingOptions:  p.financingOptions(costs.NetCost),
		FinancingType:     a.FinancingType,
	}
	if a.CurrentHomeValue > 0 {
		projection.NewHomeValue = math.Round(a.CurrentHomeValue + watts*a.HomeValueMultiplier)
	}

	return projection
}

// payback returns the simple payback in years, nil when the system never
// pays for itself within the model.
func payback(netCost, annualSavings, annualMaintenance float64) *float64 {
	if netCost <= 0 {
		zero := 0.0
		return &zero
	}
	spread := annualSavings - annualMaintenance
	if spread <= 0 {
		return nil
	}
	years := roundTenth(netCost / spread)
	return &years
}

// lifetime walks the analysis window year by year, degrading production and
// inflating the utility rate as it goes.
func (p *Projector) lifetime(annualProductionKWh, netCost float64) LifetimeROI {
	a := p.a

	production := annualProductionKWh
	rate := a.EnergyRate
	totalSavings := 0.0
	for year := 0; year < a.AnalysisYears; year++ {
		totalSavings += production * rate
		production *= 1 - a.Degradation
		rate *= 1 + a.RateIncrease
	}

	totalMaintenance := a.Maintenance * float64(a.AnalysisYears)
	netProfit := totalSavings - totalMaintenance - netCost

	roi := 0.0
	if netCost > 0 {
		roi = roundTenth(netProfit / netCost * 100)
	}

	return LifetimeROI{
		Years:            a.AnalysisYears,
		TotalSavings:     math.Round(totalSavings),
		TotalMaintenance: math.Round(totalMaintenance),
		NetProfit:        math.Round(netProfit),
		ROI:              roi,
	}
}

// financingOptions prices every catalog preset against the net cost, plus
// the caller's custom terms when they picked any.
func (p *Projector) financingOptions(netCost float64) map[string]FinancingSummary {
	a := p.a

	options := make(map[string]FinancingSummary, len(a.Presets)+1)
	for key, preset := range a.Presets {
		options[key] = summarize(preset.Name, preset.Rate, preset.TermYears, netCost)
	}
	if _, ok := options[a.FinancingType]; !ok {
		options[a.FinancingType] = summarize("Custom Loan", a.LoanRate, a.LoanTermYears, netCost)
	}
	return options
}

func summarize(name string, rate float64, termYears int, principal float64) FinancingSummary {
	summary := FinancingSummary{
		Name:      name,
		Rate:      rate,
		TermYears: termYears,
	}

	if termYears <= 0 {
		// Cash purchase: everything upfront, no interest.
		summary.DownPayment = principal
		summary.TotalPaid = principal
		return summary
	}

	payment := monthlyPayment(principal, rate, termYears)
	summary.MonthlyPayment = roundCents(payment)
	summary.TotalPaid = math.Round(payment * float64(termYears*12))
	summary.TotalInterest = math.Round(summary.TotalPaid - principal)
	return summary
}

// monthlyPayment is the standard amortization formula with a flat
// principal split when the rate is zero or the denominator degenerates.
func monthlyPayment(principal, annualRate float64, termYears int) float64 {
	months := float64(termYears * 12)
	if months <= 0 || principal <= 0 {
		return 0
	}

	monthlyRate := annualRate / 12
	if monthlyRate <= 0 {
		return principal / months
	}

	factor := math.Pow(1+monthlyRate, months)
	denominator := factor - 1
	if denominator <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return principal / months
	}
	return principal * monthlyRate * factor / denominator
}

// MonthlyBreakdown builds the per-month cash flow for the selected
// financing, with maintenance pro-rated into both phases.
func (p *Projector) MonthlyBreakdown(projection Projection, annualProductionKWh float64) MonthlyBreakdown {
	a := p.a

	monthlyProduction := annualProductionKWh / 12
	monthlySavings := roundCents(monthlyProduction * a.EnergyRate)

	bill := a.CurrentMonthlyBill
	if bill <= 0 {
		bill = roundCents(monthlyProduction * a.EnergyRate * 1.15)
	}

	maintenance := roundCents(a.Maintenance / 12)

	selected := projection.FinancingOptions[projection.FinancingType]
	payment := selected.MonthlyPayment

	during := DuringLoanPhase{
		LoanPayment:       payment,
		ElectricBill:      bill,
		SolarSavings:      -monthlySavings,
		MaintenanceCost:   maintenance,
		NetCost:           math.Round(payment + bill - monthlySavings + maintenance),
		VsNoSolar:         bill,
		ExtraCostForSolar: math.Round(payment + maintenance - monthlySavings),
	}

	after := AfterLoanPhase{
		ElectricBill:    bill,
		SolarSavings:    -monthlySavings,
		MaintenanceCost: maintenance,
		NetCost:         math.Round(bill - monthlySavings + maintenance),
		VsNoSolar:       bill,
		MonthlySavings:  roundCents(monthlySavings - maintenance),
	}

	return MonthlyBreakdown{
		DuringLoan:           during,
		AfterLoan:            after,
		LoanTermYears:        selected.TermYears,
		MonthlySavings:       monthlySavings,
		EstimatedMonthlyBill: bill,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
