package service

import (
	"context"
	"testing"
	"time"

	"solar_roi_backend/internal/catalog"
	"solar_roi_backend/internal/incentives"
	"solar_roi_backend/internal/rates"
	"solar_roi_backend/internal/roi/transport"
	"solar_roi_backend/platform/logger"
)

type staticRateConfig struct{}

func (staticRateConfig) GetOpenEIAPIKey() string        { return "" }
func (staticRateConfig) GetOpenEIBaseURL() string       { return "http://unused" }
func (staticRateConfig) IsRateLookupEnabled() bool      { return false }
func (staticRateConfig) GetRedisURL() string            { return "" }
func (staticRateConfig) GetRateCacheTTL() time.Duration { return time.Hour }

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat := catalog.MustLoad()
	log := logger.New("test")
	cfg := staticRateConfig{}
	return NewService(
		cat,
		rates.NewResolver(cat, cfg, cfg, nil, log),
		incentives.NewResolver(cat),
		log,
	)
}

func TestCalculateFullEnvelope(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Calculate(context.Background(), transport.CalculateRequest{
		SystemSizeKW:     6,
		AnnualProduction: 9000,
		ZipCode:          "75201",
		State:            "TX",
		City:             "Dallas",
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}

	if result.AnalysisID == "" {
		t.Error("expected an analysis id")
	}
	if result.Location.State != "TX" || result.Location.City != "Dallas" {
		t.Errorf("unexpected location echo: %+v", result.Location)
	}
	if result.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}

	// Dallas matches the Oncor rebate: net = 21000 - 6300 - 1500.
	if result.Incentives.AppliedRebate != 1500 {
		t.Errorf("expected Oncor rebate 1500, got %v", result.Incentives.AppliedRebate)
	}
	if result.ROI.Costs.NetCost != 13200 {
		t.Errorf("expected net cost 13200, got %v", result.ROI.Costs.NetCost)
	}
	if result.Config.LocalRebate != 1500 {
		t.Errorf("config snapshot must echo the applied rebate, got %v", result.Config.LocalRebate)
	}
	if result.Config.EnergyRate != result.EnergyRate.RatePerKWh {
		t.Errorf("config rate %v disagrees with resolved rate %v", result.Config.EnergyRate, result.EnergyRate.RatePerKWh)
	}
	if result.HistoricalGrowth.Rate != 0.028 {
		t.Errorf("expected Texas growth history, got %v", result.HistoricalGrowth.Rate)
	}

	if result.PurchaseScore.Score < 1 || result.PurchaseScore.Score > 9 {
		t.Errorf("score out of range: %d", result.PurchaseScore.Score)
	}
	if len(result.PurchaseScore.Insights) == 0 || len(result.PurchaseScore.Insights) > 4 {
		t.Errorf("unexpected insight count: %d", len(result.PurchaseScore.Insights))
	}
}

func TestCalculateAppliesShading(t *testing.T) {
	svc := newTestService(t)

	shade := 20
	result, err := svc.Calculate(context.Background(), transport.CalculateRequest{
		SystemSizeKW:        6,
		AnnualProduction:    9000,
		State:               "TX",
		City:                "Dallas",
		OverallShadePercent: &shade,
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}

	// 20% shade weighted by daylight: 9000 * (1 - 0.20*0.6) = 7920.
	if result.ROI.AnnualProduction != 7920 {
		t.Errorf("expected shaded production 7920, got %v", result.ROI.AnnualProduction)
	}
	if result.Config.OverallShadePercent != 20 {
		t.Errorf("config snapshot must echo the shade input, got %v", result.Config.OverallShadePercent)
	}
}

func TestCalculateRebateOverride(t *testing.T) {
	svc := newTestService(t)

	override := 2500.0
	result, err := svc.Calculate(context.Background(), transport.CalculateRequest{
		SystemSizeKW:     6,
		AnnualProduction: 9000,
		State:            "TX",
		City:             "Dallas",
		UserInputs:       transport.RawAssumptions{LocalRebate: &override},
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}

	if !result.Incentives.OverrideUsed || result.Incentives.AppliedRebate != 2500 {
		t.Errorf("expected override rebate 2500, got %+v", result.Incentives)
	}
	if result.ROI.Costs.NetCost != 12200 {
		t.Errorf("expected net cost 12200 under override, got %v", result.ROI.Costs.NetCost)
	}
}
