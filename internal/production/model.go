// Package production models monthly solar output and shading impact.
// When measured flux imagery is available it drives the estimate directly;
// otherwise output is derived from annual sunshine hours and system size.
package production

import "math"

// fluxToKWh converts measured monthly irradiance into produced kWh.
const fluxToKWh = 0.15

// estimatedPerformanceRatio covers inverter, wiring and soiling losses in
// the estimated mode.
const estimatedPerformanceRatio = 0.75

// daylightShadeWeight discounts overall shade for the share of shaded
// hours that fall outside the productive window.
const daylightShadeWeight = 0.6

// seasonalFactors shape the flat annual average into a monthly curve,
// January through December.
var seasonalFactors = [12]float64{
	0.75, 0.80, 0.95, 1.05, 1.15, 1.20,
	1.20, 1.15, 1.05, 0.95, 0.80, 0.75,
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Model computes production estimates.
type Model struct{}

func NewModel() *Model {
	return &Model{}
}

// FromFlux builds the monthly curve from measured irradiance. Months
// beyond the provided flux data fall back to zero.
func (m *Model) FromFlux(monthlyFlux []float64) []MonthlyEstimate {
	estimates := make([]MonthlyEstimate, 12)
	for i := range estimates {
		var flux float64
		if i < len(monthlyFlux) {
			flux = monthlyFlux[i]
		}
		estimates[i] = MonthlyEstimate{
			Month:               monthNames[i],
			SolarIrradiance:     int(math.Round(flux)),
			EstimatedProduction: int(math.Round(flux * fluxToKWh)),
		}
	}
	return estimates
}

// Estimated builds the monthly curve from annual sunshine hours and system
// size when no flux imagery exists.
func (m *Model) Estimated(annualSunshineHours, systemSizeKW float64) []MonthlyEstimate {
	avgMonthly := (annualSunshineHours / 12) * systemSizeKW * estimatedPerformanceRatio

	estimates := make([]MonthlyEstimate, 12)
	for i := range estimates {
		estimates[i] = MonthlyEstimate{
			Month:               monthNames[i],
			SolarIrradiance:     int(math.Round(annualSunshineHours / 12 * seasonalFactors[i])),
			EstimatedProduction: int(math.Round(avgMonthly * seasonalFactors[i])),
		}
	}
	return estimates
}

// Seasonal partitions a monthly curve into meteorological seasons with
// mean production per season. Winter is December through February.
func (m *Model) Seasonal(monthly []MonthlyEstimate) SeasonalBreakdown {
	winter := []MonthlyEstimate{monthly[0], monthly[1], monthly[11]}
	spring := monthly[2:5]
	summer := monthly[5:8]
	fall := monthly[8:11]

	return SeasonalBreakdown{
		Winter: SeasonStats{Avg: meanProduction(winter), Months: winter},
		Spring: SeasonStats{Avg: meanProduction(spring), Months: spring},
		Summer: SeasonStats{Avg: meanProduction(summer), Months: summer},
		Fall:   SeasonStats{Avg: meanProduction(fall), Months: fall},
	}
}

// AnnualTotal sums the monthly curve.
func (m *Model) AnnualTotal(monthly []MonthlyEstimate) int {
	total := 0
	for _, month := range monthly {
		total += month.EstimatedProduction
	}
	return total
}

// ShadedAnnualProduction derates an unshaded annual figure by the overall
// shade percentage, weighted for daylight hours.
func ShadedAnnualProduction(unshadedKWh float64, overallShadePercent int) float64 {
	derate := 1 - float64(overallShadePercent)/100*daylightShadeWeight
	if derate < 0 {
		derate = 0
	}
	return unshadedKWh * derate
}

func meanProduction(months []MonthlyEstimate) int {
	if len(months) == 0 {
		return 0
	}
	total := 0
	for _, month := range months {
		total += month.EstimatedProduction
	}
	return int(math.Round(float64(total) / float64(len(months))))
}
