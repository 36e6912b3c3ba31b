package production

import (
	"math"
	"testing"
)

func TestFromFlux(t *testing.T) {
	model := NewModel()

	flux := []float64{100, 110, 130, 150, 170, 180, 180, 170, 150, 130, 110, 100}
	monthly := model.FromFlux(flux)

	if len(monthly) != 12 {
		t.Fatalf("expected 12 months, got %d", len(monthly))
	}
	if monthly[0].Month != "January" || monthly[11].Month != "December" {
		t.Errorf("unexpected month names: %s ... %s", monthly[0].Month, monthly[11].Month)
	}
	if monthly[0].SolarIrradiance != 100 {
		t.Errorf("expected irradiance 100, got %d", monthly[0].SolarIrradiance)
	}
	if monthly[0].EstimatedProduction != 15 {
		t.Errorf("expected production 15 (100*0.15), got %d", monthly[0].EstimatedProduction)
	}
	if monthly[5].EstimatedProduction != 27 {
		t.Errorf("expected production 27 (180*0.15), got %d", monthly[5].EstimatedProduction)
	}
}

func TestFromFluxShortArray(t *testing.T) {
	model := NewModel()

	monthly := model.FromFlux([]float64{100, 110})

	if monthly[2].EstimatedProduction != 0 || monthly[2].SolarIrradiance != 0 {
		t.Errorf("expected missing months to be zero, got %+v", monthly[2])
	}
	if monthly[1].EstimatedProduction != 17 {
		t.Errorf("expected production 17 (round 110*0.15), got %d", monthly[1].EstimatedProduction)
	}
}

func TestEstimatedCurve(t *testing.T) {
	model := NewModel()

	monthly := model.Estimated(1650, 6)

	// avg = (1650/12) * 6 * 0.75 = 618.75
	if got := monthly[0].EstimatedProduction; got != int(math.Round(618.75*0.75)) {
		t.Errorf("expected January production %d, got %d", int(math.Round(618.75*0.75)), got)
	}
	if got := monthly[5].EstimatedProduction; got != int(math.Round(618.75*1.20)) {
		t.Errorf("expected June production %d, got %d", int(math.Round(618.75*1.20)), got)
	}
	if got := monthly[0].SolarIrradiance; got != int(math.Round(1650.0/12*0.75)) {
		t.Errorf("unexpected January irradiance %d", got)
	}

	// Summer months outproduce winter months.
	if monthly[6].EstimatedProduction <= monthly[0].EstimatedProduction {
		t.Error("expected July to outproduce January")
	}
}

func TestSeasonalPartition(t *testing.T) {
	model := NewModel()

	monthly := model.Estimated(1650, 6)
	seasons := model.Seasonal(monthly)

	if len(seasons.Winter.Months) != 3 || len(seasons.Summer.Months) != 3 {
		t.Fatal("expected 3 months per season")
	}
	if seasons.Winter.Months[2].Month != "December" {
		t.Errorf("expected December in winter, got %s", seasons.Winter.Months[2].Month)
	}
	if seasons.Spring.Months[0].Month != "March" {
		t.Errorf("expected March to open spring, got %s", seasons.Spring.Months[0].Month)
	}
	if seasons.Fall.Months[2].Month != "November" {
		t.Errorf("expected November to close fall, got %s", seasons.Fall.Months[2].Month)
	}

	if seasons.Summer.Avg <= seasons.Winter.Avg {
		t.Errorf("expected summer avg %d to exceed winter avg %d", seasons.Summer.Avg, seasons.Winter.Avg)
	}
}

func TestAnnualTotal(t *testing.T) {
	model := NewModel()

	monthly := model.Estimated(1650, 6)
	total := model.AnnualTotal(monthly)

	sum := 0
	for _, month := range monthly {
		sum += month.EstimatedProduction
	}
	if total != sum {
		t.Errorf("expected total %d, got %d", sum, total)
	}
	if total <= 0 {
		t.Errorf("expected positive annual production, got %d", total)
	}
}

func TestShadedAnnualProduction(t *testing.T) {
	// 20% shade weighted by 0.6 daylight factor -> 12% derate.
	got := ShadedAnnualProduction(10000, 20)
	if got != 8800 {
		t.Errorf("expected 8800, got %v", got)
	}

	if got := ShadedAnnualProduction(10000, 0); got != 10000 {
		t.Errorf("expected no derate at zero shade, got %v", got)
	}

	// Full shade never goes negative.
	if got := ShadedAnnualProduction(10000, 100); got != 4000 {
		t.Errorf("expected 4000 at full shade, got %v", got)
	}
}
