package service

import (
	"context"
	"time"

	"solar_roi_backend/internal/catalog"
	"solar_roi_backend/internal/incentives"
	"solar_roi_backend/internal/production"
	"solar_roi_backend/internal/rates"
	"solar_roi_backend/internal/roi/transport"
	"solar_roi_backend/platform/logger"

	"github.com/google/uuid"
)

// Location echoes where the analysis was anchored.
type Location struct {
	ZipCode string `json:"zipCode,omitempty"`
	State   string `json:"state"`
	City    string `json:"city,omitempty"`
}

// ConfigSnapshot echoes the resolved assumptions so the caller can see
// exactly which numbers drove the projection.
type ConfigSnapshot struct {
	CostPerWatt         float64 `json:"costPerWatt"`
	FederalITC          float64 `json:"federalITC"`
	StateTaxCreditRate  float64 `json:"stateTaxCreditRate,omitempty"`
	MaxStateCredit      float64 `json:"maxStateCredit,omitempty"`
	LocalRebate         float64 `json:"localRebate"`
	EnergyRate          float64 `json:"energyRate"`
	AnnualRateIncrease  float64 `json:"annualRateIncrease"`
	PanelDegradation    float64 `json:"panelDegradation"`
	AnnualMaintenance   float64 `json:"annualMaintenance"`
	HomeValueMultiplier float64 `json:"homeValueMultiplier"`
	AnalysisYears       int     `json:"analysisYears"`
	FinancingType       string  `json:"financingType"`
	OverallShadePercent int     `json:"overallShadePercent,omitempty"`
}

// Result is the full calculation envelope.
type Result struct {
	AnalysisID       string               `json:"analysisId"`
	Location         Location             `json:"location"`
	EnergyRate       rates.EnergyRate     `json:"energyRate"`
	HistoricalGrowth catalog.GrowthRate   `json:"historicalGrowth"`
	StateIncentive   *catalog.StateCredit `json:"stateIncentive,omitempty"`
	Incentives       incentives.Result    `json:"incentives"`
	Config           ConfigSnapshot       `json:"config"`
	ROI              Projection           `json:"roi"`
	MonthlyBreakdown MonthlyBreakdown     `json:"monthlyBreakdown"`
	PurchaseScore    PurchaseScore        `json:"purchaseScore"`
	Timestamp        time.Time            `json:"timestamp"`
}

// Service orchestrates rate lookup, incentive matching and the projection.
type Service struct {
	catalog    *catalog.Catalog
	rates      *rates.Resolver
	incentives *incentives.Resolver
	log        *logger.Logger
}

func NewService(cat *catalog.Catalog, rateResolver *rates.Resolver, incentiveResolver *incentives.Resolver, log *logger.Logger) *Service {
	return &Service{
		catalog:    cat,
		rates:      rateResolver,
		incentives: incentiveResolver,
		log:        log,
	}
}

// Calculate runs the full financial analysis for one proposed system.
func (s *Service) Calculate(ctx context.Context, req transport.CalculateRequest) (Result, error) {
	rate := s.rates.Resolve(ctx, req.ZipCode, req.State, req.City)
	growth := s.catalog.GrowthFor(req.State)

	watts := req.SystemSizeKW * 1000
	costPerWatt := resolveCostPerWatt(req.UserInputs, s.catalog)

	system := incentives.System{
		SizeWatts: watts,
		AnnualKWh: req.AnnualProduction,
		GrossCost: watts * costPerWatt,
	}
	if req.UserInputs.LocalRebate != nil {
		system.RebateOverride = *req.UserInputs.LocalRebate
		system.HasRebateOverride = true
	}
	incentiveResult := s.incentives.Resolve(req.State, req.City, system)

	assumptions := ResolveAssumptions(req.UserInputs, s.catalog, rate, growth, incentiveResult)

	annualProduction := req.AnnualProduction
	shadePercent := 0
	if req.OverallShadePercent != nil {
		shadePercent = *req.OverallShadePercent
		annualProduction = production.ShadedAnnualProduction(annualProduction, shadePercent)
	}

	projector := NewProjector(assumptions)
	projection := projector.Project(req.SystemSizeKW, annualProduction)
	breakdown := projector.MonthlyBreakdown(projection, annualProduction)

	score := ScorePurchase(ScoreInputs{
		PaybackYears:        projection.PaybackPeriod,
		ROIPercent:          projection.ROI25Year.ROI,
		NetProfit:           projection.ROI25Year.NetProfit,
		ExtraCostDuringLoan: breakdown.DuringLoan.ExtraCostForSolar,
		PostLoanSavings:     breakdown.AfterLoan.MonthlySavings,
	})

	s.log.Info("roi calculation complete",
		"state", req.State,
		"systemSizeKW", req.SystemSizeKW,
		"netCost", projection.Costs.NetCost,
		"score", score.Score,
	)

	return Result{
		AnalysisID: uuid.NewString(),
		Location: Location{
			ZipCode: req.ZipCode,
			State:   req.State,
			City:    req.City,
		},
		EnergyRate:       rate,
		HistoricalGrowth: growth,
		StateIncentive:   incentiveResult.StateCredit,
		Incentives:       incentiveResult,
		Config: ConfigSnapshot{
			CostPerWatt:         assumptions.CostPerWatt,
			FederalITC:          assumptions.FederalITC,
			StateTaxCreditRate:  assumptions.StateCreditRate,
			MaxStateCredit:      assumptions.StateCreditMax,
			LocalRebate:         assumptions.LocalRebate,
			EnergyRate:          assumptions.EnergyRate,
			AnnualRateIncrease:  assumptions.RateIncrease,
			PanelDegradation:    assumptions.Degradation,
			AnnualMaintenance:   assumptions.Maintenance,
			HomeValueMultiplier: assumptions.HomeValueMultiplier,
			AnalysisYears:       assumptions.AnalysisYears,
			FinancingType:       assumptions.FinancingType,
			OverallShadePercent: shadePercent,
		},
		ROI:              projection,
		MonthlyBreakdown: breakdown,
		PurchaseScore:    score,
		Timestamp:        time.Now().UTC(),
	}, nil
}
