package service

import (
	"math"
	"testing"

	"solar_roi_backend/internal/catalog"
)

func baseAssumptions(t *testing.T) Assumptions {
	t.Helper()
	return Assumptions{
		CostPerWatt:         3.50,
		FederalITC:          0.30,
		EnergyRate:          0.14,
		RateIncrease:        0.03,
		Degradation:         0.005,
		Maintenance:         150,
		HomeValueMultiplier: 20,
		AnalysisYears:       25,
		FinancingType:       "loan10",
		LoanRate:            0.0699,
		LoanTermYears:       10,
		Presets:             catalog.MustLoad().Financing,
	}
}

func TestProjectBaselineScenario(t *testing.T) {
	projector := NewProjector(baseAssumptions(t))

	result := projector.Project(6, 9000)

	if result.Costs.GrossCost != 21000 {
		t.Errorf("expected gross cost 21000, got %v", result.Costs.GrossCost)
	}
	if result.Costs.FederalTaxCredit != 6300 {
		t.Errorf("expected federal credit 6300, got %v", result.Costs.FederalTaxCredit)
	}
	if result.Costs.NetCost != 14700 {
		t.Errorf("expected net cost 14700, got %v", result.Costs.NetCost)
	}
	if result.AnnualSavings != 1260 {
		t.Errorf("expected annual savings 1260, got %v", result.AnnualSavings)
	}

	// 14700 / (1260 - 150) = 13.24...
	if result.PaybackPeriod == nil || *result.PaybackPeriod != 13.2 {
		t.Fatalf("expected payback 13.2, got %v", result.PaybackPeriod)
	}

	if result.HomeValueIncrease != 120000 {
		t.Errorf("expected home value increase 120000, got %v", result.HomeValueIncrease)
	}
}

func TestProjectLifetimeLoop(t *testing.T) {
	projector := NewProjector(baseAssumptions(t))

	result := projector.Project(6, 9000)
	lifetime := result.ROI25Year

	if lifetime.Years != 25 {
		t.Fatalf("expected 25-year window, got %d", lifetime.Years)
	}
	if lifetime.TotalMaintenance != 3750 {
		t.Errorf("expected total maintenance 3750, got %v", lifetime.TotalMaintenance)
	}

	// Rate growth (3%/yr) outpaces degradation (0.5%/yr), so lifetime
	// savings beat the flat-rate figure of 25 * 1260 = 31500.
	if lifetime.TotalSavings <= 31500 {
		t.Errorf("expected compounding savings above 31500, got %v", lifetime.TotalSavings)
	}
	if lifetime.TotalSavings > 46000 {
		t.Errorf("lifetime savings implausibly high: %v", lifetime.TotalSavings)
	}

	wantProfit := lifetime.TotalSavings - lifetime.TotalMaintenance - result.Costs.NetCost
	if math.Abs(lifetime.NetProfit-wantProfit) > 1 {
		t.Errorf("net profit %v inconsistent with components (want %v)", lifetime.NetProfit, wantProfit)
	}

	wantROI := math.Round(wantProfit/result.Costs.NetCost*1000) / 10
	if math.Abs(lifetime.ROI-wantROI) > 0.2 {
		t.Errorf("expected roi near %v, got %v", wantROI, lifetime.ROI)
	}
}

func TestProjectFreeSystemDegenerates(t *testing.T) {
	a := baseAssumptions(t)
	a.LocalRebate = 50000

	result := NewProjector(a).Project(6, 9000)

	if result.Costs.NetCost != 0 {
		t.Fatalf("expected net cost clamped to 0, got %v", result.Costs.NetCost)
	}
	if result.PaybackPeriod == nil || *result.PaybackPeriod != 0 {
		t.Errorf("expected zero payback for a free system, got %v", result.PaybackPeriod)
	}
	if result.ROI25Year.ROI != 0 {
		t.Errorf("expected roi 0 when net cost is 0, got %v", result.ROI25Year.ROI)
	}
}

func TestProjectPaybackNeverRecovers(t *testing.T) {
	a := baseAssumptions(t)
	a.Maintenance = 2000

	result := NewProjector(a).Project(6, 9000)

	if result.PaybackPeriod != nil {
		t.Errorf("expected nil payback when maintenance exceeds savings, got %v", *result.PaybackPeriod)
	}
}

func TestFinancingOptions(t *testing.T) {
	projector := NewProjector(baseAssumptions(t))

	result := projector.Project(6, 9000)
	options := result.FinancingOptions

	for _, key := range []string{"cash", "loan10", "loan15", "loan20"} {
		if _, ok := options[key]; !ok {
			t.Fatalf("missing financing option %q", key)
		}
	}

	cash := options["cash"]
	if cash.DownPayment != 14700 || cash.MonthlyPayment != 0 || cash.TotalInterest != 0 {
		t.Errorf("unexpected cash option: %+v", cash)
	}
	if cash.TotalPaid != 14700 {
		t.Errorf("cash total paid must equal net cost, got %v", cash.TotalPaid)
	}

	loan := options["loan10"]
	if loan.MonthlyPayment < 170 || loan.MonthlyPayment > 171 {
		t.Errorf("expected loan10 payment near 170.6, got %v", loan.MonthlyPayment)
	}
	if loan.TotalInterest <= 0 {
		t.Errorf("expected positive interest, got %v", loan.TotalInterest)
	}
	wantTotal := math.Round(loan.MonthlyPayment * 120)
	if math.Abs(loan.TotalPaid-wantTotal) > 1 {
		t.Errorf("total paid %v inconsistent with payment %v", loan.TotalPaid, loan.MonthlyPayment)
	}

	// Longer terms mean lower payments but more interest.
	if options["loan20"].MonthlyPayment >= loan.MonthlyPayment {
		t.Error("loan20 payment should undercut loan10")
	}
	if options["loan20"].TotalInterest <= loan.TotalInterest {
		t.Error("loan20 interest should exceed loan10")
	}
}

func TestCustomFinancingOption(t *testing.T) {
	a := baseAssumptions(t)
	a.FinancingType = "custom"
	a.LoanRate = 0.05
	a.LoanTermYears = 12

	result := NewProjector(a).Project(6, 9000)

	custom, ok := result.FinancingOptions["custom"]
	if !ok {
		t.Fatal("expected a custom financing entry")
	}
	if custom.TermYears != 12 || custom.Rate != 0.05 {
		t.Errorf("unexpected custom terms: %+v", custom)
	}
}

func TestMonthlyPaymentZeroRate(t *testing.T) {
	if got := monthlyPayment(12000, 0, 10); got != 100 {
		t.Errorf("expected flat principal split 100, got %v", got)
	}
	if got := monthlyPayment(0, 0.07, 10); got != 0 {
		t.Errorf("expected zero payment on zero principal, got %v", got)
	}
	if got := monthlyPayment(12000, 0.07, 0); got != 0 {
		t.Errorf("expected zero payment on zero term, got %v", got)
	}
}

func TestMonthlyBreakdown(t *testing.T) {
	projector := NewProjector(baseAssumptions(t))

	projection := projector.Project(6, 9000)
	breakdown := projector.MonthlyBreakdown(projection, 9000)

	if breakdown.MonthlySavings != 105 {
		t.Fatalf("expected monthly savings 105, got %v", breakdown.MonthlySavings)
	}
	// No bill supplied: estimate at 15% above the solar offset.
	if breakdown.EstimatedMonthlyBill != 120.75 {
		t.Errorf("expected estimated bill 120.75, got %v", breakdown.EstimatedMonthlyBill)
	}
	if breakdown.LoanTermYears != 10 {
		t.Errorf("expected loan term 10, got %d", breakdown.LoanTermYears)
	}

	payment := projection.FinancingOptions["loan10"].MonthlyPayment
	during := breakdown.DuringLoan
	if during.LoanPayment != payment {
		t.Errorf("expected loan payment %v, got %v", payment, during.LoanPayment)
	}
	if during.SolarSavings != -105 || during.MaintenanceCost != 12.5 {
		t.Errorf("unexpected during-loan flows: %+v", during)
	}
	wantNet := math.Round(payment + 120.75 - 105 + 12.5)
	if during.NetCost != wantNet {
		t.Errorf("expected during-loan net %v, got %v", wantNet, during.NetCost)
	}
	wantExtra := math.Round(payment + 12.5 - 105)
	if during.ExtraCostForSolar != wantExtra {
		t.Errorf("expected extra cost %v, got %v", wantExtra, during.ExtraCostForSolar)
	}

	after := breakdown.AfterLoan
	if after.LoanPayment != 0 {
		t.Errorf("expected no payment after payoff, got %v", after.LoanPayment)
	}
	if after.NetCost != 28 {
		t.Errorf("expected after-loan net 28, got %v", after.NetCost)
	}
	if after.MonthlySavings != 92.5 {
		t.Errorf("expected after-loan savings 92.5, got %v", after.MonthlySavings)
	}
}

func TestMonthlyBreakdownWithKnownBill(t *testing.T) {
	a := baseAssumptions(t)
	a.CurrentMonthlyBill = 185

	projector := NewProjector(a)
	projection := projector.Project(6, 9000)
	breakdown := projector.MonthlyBreakdown(projection, 9000)

	if breakdown.EstimatedMonthlyBill != 185 {
		t.Errorf("expected supplied bill 185, got %v", breakdown.EstimatedMonthlyBill)
	}
	if breakdown.DuringLoan.VsNoSolar != 185 || breakdown.AfterLoan.VsNoSolar != 185 {
		t.Error("vsNoSolar must reflect the supplied bill")
	}
}
