package roof

import (
	"fmt"
	"math"

	"solar_roi_backend/internal/solarapi"
)

const (
	// optimalAzimuth is due south for northern-hemisphere rooftops.
	optimalAzimuth = 180.0
	// optimalPitch is the tilt where annual yield peaks for US latitudes.
	optimalPitch = 28.0

	// azimuthWeight and pitchWeight blend the two orientation scores.
	azimuthWeight = 0.75
	pitchWeight   = 0.25

	// panelAreaSqMeters is the footprint of one panel including spacing.
	panelAreaSqMeters = 1.7
	// panelKW is the rated output of one panel in kW.
	panelKW = 0.4

	// sqMetersToSqFt converts areas for the US-facing response.
	sqMetersToSqFt = 10.764
)

// Suitability tiers.
const (
	tierExcellent = 85
	tierVeryGood  = 70
	tierGood      = 55
	tierFair      = 40
)

// Scorer grades roof planes by orientation.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score converts provider roof planes into scored segments, preserving the
// provider's segment order.
func (s *Scorer) Score(stats []solarapi.RoofSegmentStat) []Segment {
	segments := make([]Segment, 0, len(stats))

	for i, stat := range stats {
		efficiency := s.scoreOrientation(stat.AzimuthDegrees, stat.PitchDegrees)
		direction := cardinalDirection(stat.AzimuthDegrees)

		segment := Segment{
			ID:            i,
			Name:          fmt.Sprintf("Roof Segment %d", i+1),
			Azimuth:       int(math.Round(stat.AzimuthDegrees)),
			Direction:     direction,
			Pitch:         math.Round(stat.PitchDegrees*10) / 10,
			AreaSqFt:      int(math.Round(stat.Stats.AreaMeters2 * sqMetersToSqFt)),
			AreaSqM:       int(math.Round(stat.Stats.AreaMeters2)),
			SunshineHours: medianSunshine(stat.Stats.SunshineQuantiles),
			Efficiency:    efficiency,
			Suitability:   suitabilityTier(efficiency),
			PanelCapacity: int(math.Floor(stat.Stats.AreaMeters2 / panelAreaSqMeters)),
			Color:         efficiencyColor(efficiency),
			Center:        stat.Center,
			BoundingBox:   stat.BoundingBox,
		}
		segment.Recommendation = segmentRecommendation(direction, efficiency)

		segments = append(segments, segment)
	}

	return segments
}

// scoreOrientation blends azimuth and pitch efficiency into a 0-100 score.
func (s *Scorer) scoreOrientation(azimuth, pitch float64) int {
	combined := s.scoreAzimuth(azimuth)*azimuthWeight + s.scorePitch(pitch)*pitchWeight
	return int(math.Round(combined))
}

// scoreAzimuth penalizes deviation from due south. Production falls slowly
// within 45 degrees, then steeply, with north-facing planes near zero.
func (s *Scorer) scoreAzimuth(azimuth float64) float64 {
	diff := math.Abs(optimalAzimuth - azimuth)
	switch {
	case diff <= 15:
		return 100
	case diff <= 45:
		return 100 - (diff-15)*0.5
	case diff <= 90:
		return 85 - (diff-45)*0.8
	default:
		return math.Max(0, 49-(diff-90)*0.5)
	}
}

// scorePitch penalizes deviation from the optimal tilt. Pitch matters far
// less than azimuth, so the floor stays at 70.
func (s *Scorer) scorePitch(pitch float64) float64 {
	diff := math.Abs(pitch - optimalPitch)
	switch {
	case diff <= 5:
		return 100
	case diff <= 15:
		return 100 - (diff-5)
	default:
		return math.Max(70, 90-(diff-15)*0.5)
	}
}

// cardinalDirection maps a compass azimuth to its octant. North wraps
// around zero, every bin is half-open [min, max).
func cardinalDirection(azimuth float64) string {
	if azimuth >= 337.5 || azimuth < 22.5 {
		return "North"
	}

	octants := []struct {
		name     string
		min, max float64
	}{
		{"Northeast", 22.5, 67.5},
		{"East", 67.5, 112.5},
		{"Southeast", 112.5, 157.5},
		{"South", 157.5, 202.5},
		{"Southwest", 202.5, 247.5},
		{"West", 247.5, 292.5},
		{"Northwest", 292.5, 337.5},
	}

	for _, octant := range octants {
		if azimuth >= octant.min && azimuth < octant.max {
			return octant.name
		}
	}
	return "Unknown"
}

func suitabilityTier(efficiency int) string {
	switch {
	case efficiency >= tierExcellent:
		return "Excellent"
	case efficiency >= tierVeryGood:
		return "Very Good"
	case efficiency >= tierGood:
		return "Good"
	case efficiency >= tierFair:
		return "Fair"
	default:
		return "Poor"
	}
}

func efficiencyColor(efficiency int) string {
	switch {
	case efficiency >= tierExcellent:
		return "#00C853"
	case efficiency >= tierVeryGood:
		return "#64DD17"
	case efficiency >= tierGood:
		return "#FFD600"
	case efficiency >= tierFair:
		return "#FF9100"
	default:
		return "#FF3D00"
	}
}

func segmentRecommendation(direction string, efficiency int) string {
	switch {
	case efficiency >= tierExcellent:
		return fmt.Sprintf("Excellent choice! This %s-facing roof provides maximum solar production. Prioritize panel placement here for best ROI.", direction)
	case efficiency >= tierVeryGood:
		return fmt.Sprintf("Very good option. This %s-facing section will provide strong energy production year-round.", direction)
	case efficiency >= tierGood:
		return fmt.Sprintf("Usable but not optimal. Consider this %s-facing section only if primary areas are at capacity.", direction)
	case efficiency >= tierFair:
		return fmt.Sprintf("Marginal performance. Only use this %s-facing area if absolutely necessary for system size requirements.", direction)
	default:
		return fmt.Sprintf("Not recommended. This %s-facing section receives insufficient sun exposure for cost-effective solar installation.", direction)
	}
}

// medianSunshine picks the provider's lower-quartile sunshine figure, a
// conservative annual-hours estimate for the plane.
func medianSunshine(quantiles []float64) float64 {
	if len(quantiles) == 0 {
		return 0
	}
	if len(quantiles) <= 2 {
		return quantiles[len(quantiles)-1]
	}
	return quantiles[2]
}
