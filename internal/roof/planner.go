package roof

import (
	"fmt"
	"math"
	"sort"
)

const (
	// usableThreshold is the minimum efficiency worth installing on.
	usableThreshold = tierGood
	// avoidThreshold flags planes that would drag down the system ROI.
	avoidThreshold = 50
)

// Planner turns scored segments into an installation recommendation.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// Plan ranks segments and designs the optimal panel configuration. A roof
// with no usable segments still produces a plan, with the not-viable
// recommendation text.
func (p *Planner) Plan(segments []Segment) Recommendations {
	sorted := make([]Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Efficiency > sorted[j].Efficiency
	})

	best := sorted[0]
	worst := sorted[len(sorted)-1]

	summary := Summary{TotalSegments: len(segments)}
	for _, segment := range sorted {
		switch segment.Suitability {
		case "Excellent":
			summary.ExcellentSegments++
		case "Very Good":
			summary.VeryGoodSegments++
		}
		if segment.Efficiency >= usableThreshold {
			summary.UsableSegments++
			summary.TotalUsableArea += segment.AreaSqFt
			summary.MaxPanelCapacity += segment.PanelCapacity
		}
	}

	detailed := make([]SegmentAnalysis, 0, len(sorted))
	for _, segment := range sorted {
		detailed = append(detailed, SegmentAnalysis{
			SegmentID:      segment.ID,
			Name:           segment.Name,
			Direction:      segment.Direction,
			Efficiency:     segment.Efficiency,
			Suitability:    segment.Suitability,
			Recommendation: segment.Recommendation,
		})
	}

	var avoid *string
	if worst.Efficiency < avoidThreshold {
		text := fmt.Sprintf(
			"Avoid placing panels on the %s-facing section (%d sq ft available). It only achieves %d%% efficiency due to its %s orientation, which would significantly reduce your ROI.",
			worst.Direction, worst.AreaSqFt, worst.Efficiency, worst.Direction)
		avoid = &text
	}

	return Recommendations{
		PrimaryRecommendation: primaryRecommendation(best),
		AvoidRecommendation:   avoid,
		Summary:               summary,
		OptimalConfiguration:  p.designConfiguration(sorted),
		DetailedAnalysis:      detailed,
	}
}

func primaryRecommendation(best Segment) string {
	return fmt.Sprintf(
		"The %s-facing roof segment is your best option, achieving %d%% efficiency with %.0f annual sunshine hours. This %d sq ft section can accommodate approximately %d solar panels (%s kW system).",
		best.Direction, best.Efficiency, best.SunshineHours, best.AreaSqFt, best.PanelCapacity,
		formatKW(roundTenth(float64(best.PanelCapacity)*panelKW)))
}

// designConfiguration allocates panels to usable segments in efficiency
// order.
func (p *Planner) designConfiguration(sorted []Segment) Configuration {
	usable := make([]Segment, 0, len(sorted))
	for _, segment := range sorted {
		if segment.Efficiency >= usableThreshold {
			usable = append(usable, segment)
		}
	}

	if len(usable) == 0 {
		return Configuration{
			Recommendation: "Unfortunately, this property may not be suitable for solar installation due to poor roof orientation.",
			Segments:       []PlannedSegment{},
		}
	}

	totalCapacity := 0
	totalArea := 0
	planned := make([]PlannedSegment, 0, len(usable))
	for _, segment := range usable {
		totalCapacity += segment.PanelCapacity
		totalArea += segment.AreaSqFt

		planned = append(planned, PlannedSegment{
			Name:          segment.Name,
			Direction:     segment.Direction,
			Efficiency:    segment.Efficiency,
			PanelCapacity: segment.PanelCapacity,
			EstimatedKW:   roundTenth(float64(segment.PanelCapacity) * panelKW),
			Priority:      segmentPriority(segment.Efficiency),
		})
	}

	recommendation := fmt.Sprintf("Install all panels on the %s-facing roof for optimal performance.", usable[0].Direction)
	if len(usable) > 1 {
		recommendation = fmt.Sprintf(
			"For best results, prioritize the %s-facing roof, then expand to %s-facing section if additional capacity is needed.",
			usable[0].Direction, usable[1].Direction)
	}

	return Configuration{
		Recommendation:      recommendation,
		TotalPanelCapacity:  totalCapacity,
		EstimatedSystemSize: roundTenth(float64(totalCapacity) * panelKW),
		TotalUsableArea:     totalArea,
		Segments:            planned,
	}
}

func segmentPriority(efficiency int) string {
	switch {
	case efficiency >= tierExcellent:
		return "Primary"
	case efficiency >= tierVeryGood:
		return "Secondary"
	default:
		return "Tertiary"
	}
}

func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

func formatKW(kw float64) string {
	return fmt.Sprintf("%g", kw)
}
