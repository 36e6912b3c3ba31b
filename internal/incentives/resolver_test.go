package incentives

import (
	"testing"

	"solar_roi_backend/internal/catalog"
)

func testSystem() System {
	return System{
		SizeWatts: 6000,
		AnnualKWh: 9000,
		GrossCost: 21000,
	}
}

func TestResolveCityMatch(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	result := resolver.Resolve("TX", "Dallas", testSystem())

	// Oncor perWatt: 6000 * 0.25 = 1500, under the 8500 cap.
	if result.AppliedRebate != 1500 {
		t.Errorf("expected applied rebate 1500, got %v", result.AppliedRebate)
	}
	if result.AppliedProgram == nil || result.AppliedProgram.Name != "Oncor Residential Solar Rebate" {
		t.Fatalf("expected Oncor program applied, got %+v", result.AppliedProgram)
	}

	// The applied program must not also appear as potential.
	for _, program := range result.Potential {
		if program.Name == result.AppliedProgram.Name {
			t.Error("applied program double-counted in potential list")
		}
	}
}

func TestResolveCityMatchCaseInsensitive(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	result := resolver.Resolve("TX", "  dallas ", testSystem())
	if result.AppliedProgram == nil {
		t.Fatal("expected city match to ignore case and whitespace")
	}
}

func TestResolveBillCreditNeverApplied(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	result := resolver.Resolve("TX", "Austin", testSystem())

	// Austin only matches the bill-credit program: 9000 * 0.097 = 873.
	if result.AppliedRebate != 0 || result.AppliedProgram != nil {
		t.Errorf("bill credits must not reduce upfront cost, got %+v", result.AppliedProgram)
	}
	if len(result.Potential) != 1 {
		t.Fatalf("expected 1 potential program, got %d", len(result.Potential))
	}
	if result.Potential[0].EstimatedValue != 873 {
		t.Errorf("expected bill credit estimate 873, got %v", result.Potential[0].EstimatedValue)
	}
}

func TestResolvePerWattCap(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	// SRP in Mesa: 20000 W * 0.15 = 3000, capped at 1800.
	system := testSystem()
	system.SizeWatts = 20000
	result := resolver.Resolve("AZ", "Mesa", system)

	if result.AppliedRebate != 1800 {
		t.Errorf("expected capped rebate 1800, got %v", result.AppliedRebate)
	}
}

func TestResolveStateWideTier(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	// No CA city list contains Fresno; the state-wide SGIP storage program
	// applies, which is informational, and the flat LADWP program is
	// city-scoped so it drops out.
	result := resolver.Resolve("CA", "Fresno", testSystem())

	if result.AppliedProgram != nil {
		t.Errorf("expected no applied program, got %+v", result.AppliedProgram)
	}
	if len(result.Informational) != 1 || result.Informational[0].ValueType != catalog.ValuePerWattHour {
		t.Errorf("expected SGIP informational entry, got %+v", result.Informational)
	}
	if result.StateCredit == nil || !result.StateCredit.PropertyTaxExempt {
		t.Errorf("expected CA property tax exemption note, got %+v", result.StateCredit)
	}
}

func TestResolveDefaultTier(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	result := resolver.Resolve("VT", "Montpelier", testSystem())

	// Default program: 6000 * 0.18 = 1080, under the 1500 cap.
	if result.AppliedRebate != 1080 {
		t.Errorf("expected default rebate 1080, got %v", result.AppliedRebate)
	}
	if len(result.VendorOffers) != 1 || result.VendorOffers[0].EstimatedValue != 750 {
		t.Errorf("expected default vendor offer, got %+v", result.VendorOffers)
	}
}

func TestResolveOverrideWins(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	system := testSystem()
	system.RebateOverride = 2500
	system.HasRebateOverride = true
	result := resolver.Resolve("TX", "Dallas", system)

	if result.AppliedRebate != 2500 || !result.OverrideUsed {
		t.Errorf("expected override rebate 2500, got %v", result.AppliedRebate)
	}
	if result.AppliedProgram != nil {
		t.Error("override must not attribute a program")
	}
	// All matched programs stay potential under an override.
	if len(result.Potential) != 1 {
		t.Errorf("expected Oncor to remain potential, got %+v", result.Potential)
	}
}

func TestResolveNegativeOverrideClamped(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	system := testSystem()
	system.RebateOverride = -500
	system.HasRebateOverride = true
	result := resolver.Resolve("TX", "Dallas", system)

	if result.AppliedRebate != 0 {
		t.Errorf("expected negative override clamped to 0, got %v", result.AppliedRebate)
	}
}

func TestVendorPercentOffer(t *testing.T) {
	resolver := NewResolver(catalog.MustLoad())

	result := resolver.Resolve("CA", "Los Angeles", testSystem())

	// CA co-op group buy: 7% of 21000 = 1470.
	if len(result.VendorOffers) != 1 {
		t.Fatalf("expected 1 vendor offer, got %d", len(result.VendorOffers))
	}
	if result.VendorOffers[0].EstimatedValue != 1470 {
		t.Errorf("expected 1470 vendor estimate, got %v", result.VendorOffers[0].EstimatedValue)
	}
}
