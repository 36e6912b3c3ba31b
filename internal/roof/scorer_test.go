package roof

import (
	"testing"

	"solar_roi_backend/internal/solarapi"
)

func segmentStat(azimuth, pitch, area float64) solarapi.RoofSegmentStat {
	return solarapi.RoofSegmentStat{
		AzimuthDegrees: azimuth,
		PitchDegrees:   pitch,
		Stats: solarapi.SizeAndSunshineStats{
			AreaMeters2:       area,
			SunshineQuantiles: []float64{900, 1200, 1580, 1700, 1800},
		},
	}
}

func TestScoreOrientationSouthOptimal(t *testing.T) {
	scorer := NewScorer()

	// Due south at optimal pitch scores a perfect 100.
	if got := scorer.scoreOrientation(180, 28); got != 100 {
		t.Errorf("expected 100 for optimal orientation, got %d", got)
	}

	// Anywhere within 15 degrees of south and 5 degrees of optimal pitch
	// still scores 100.
	if got := scorer.scoreOrientation(170, 25); got != 100 {
		t.Errorf("expected 100 inside tolerance bands, got %d", got)
	}
}

func TestScoreOrientationBands(t *testing.T) {
	scorer := NewScorer()

	tests := []struct {
		name    string
		azimuth float64
		pitch   float64
		want    int
	}{
		// azimuth diff 40: 100-(40-15)*0.5 = 87.5; pitch 100 => 87.5*0.75+25 = 90.625 -> 91
		{"southeast", 140, 28, 91},
		// azimuth diff 90: 85-45*0.8 = 49; pitch 100 => 49*0.75+25 = 61.75 -> 62
		{"east", 90, 28, 62},
		// azimuth diff 180: max(0, 49-90*0.5) = 4; pitch 100 => 3+25 = 28
		{"north", 0, 28, 28},
		// pitch diff 10: 100-(10-5) = 95; azimuth 100 => 75+23.75 = 98.75 -> 99
		{"steep south", 180, 38, 99},
		// pitch diff 28 (flat): max(70, 90-13*0.5) = 83.5; azimuth 100 => 75+20.875 -> 96
		{"flat south", 180, 0, 96},
	}

	for _, tt := range tests {
		if got := scorer.scoreOrientation(tt.azimuth, tt.pitch); got != tt.want {
			t.Errorf("%s: expected efficiency %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestCardinalDirection(t *testing.T) {
	tests := []struct {
		azimuth float64
		want    string
	}{
		{0, "North"},
		{350, "North"},
		{337.5, "North"},
		{22.4, "North"},
		{22.5, "Northeast"},
		{45, "Northeast"},
		{90, "East"},
		{135, "Southeast"},
		{180, "South"},
		{202.4, "South"},
		{225, "Southwest"},
		{270, "West"},
		{315, "Northwest"},
	}

	for _, tt := range tests {
		if got := cardinalDirection(tt.azimuth); got != tt.want {
			t.Errorf("azimuth %.1f: expected %s, got %s", tt.azimuth, tt.want, got)
		}
	}
}

func TestSuitabilityTiers(t *testing.T) {
	tests := []struct {
		efficiency int
		tier       string
		color      string
	}{
		{100, "Excellent", "#00C853"},
		{85, "Excellent", "#00C853"},
		{84, "Very Good", "#64DD17"},
		{70, "Very Good", "#64DD17"},
		{69, "Good", "#FFD600"},
		{55, "Good", "#FFD600"},
		{54, "Fair", "#FF9100"},
		{40, "Fair", "#FF9100"},
		{39, "Poor", "#FF3D00"},
		{0, "Poor", "#FF3D00"},
	}

	for _, tt := range tests {
		if got := suitabilityTier(tt.efficiency); got != tt.tier {
			t.Errorf("efficiency %d: expected tier %s, got %s", tt.efficiency, tt.tier, got)
		}
		if got := efficiencyColor(tt.efficiency); got != tt.color {
			t.Errorf("efficiency %d: expected color %s, got %s", tt.efficiency, tt.color, got)
		}
	}
}

func TestScoreSegments(t *testing.T) {
	scorer := NewScorer()

	segments := scorer.Score([]solarapi.RoofSegmentStat{
		segmentStat(178.2, 25.3, 60.2),
		segmentStat(0, 30, 34.5),
	})

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	south := segments[0]
	if south.Name != "Roof Segment 1" || south.ID != 0 {
		t.Errorf("unexpected identity: %s (id %d)", south.Name, south.ID)
	}
	if south.Direction != "South" {
		t.Errorf("expected South, got %s", south.Direction)
	}
	if south.Efficiency != 100 {
		t.Errorf("expected efficiency 100, got %d", south.Efficiency)
	}
	if south.PanelCapacity != 35 {
		t.Errorf("expected 35 panels (floor 60.2/1.7), got %d", south.PanelCapacity)
	}
	if south.AreaSqFt != 648 {
		t.Errorf("expected 648 sq ft, got %d", south.AreaSqFt)
	}
	if south.SunshineHours != 1580 {
		t.Errorf("expected 1580 sunshine hours, got %v", south.SunshineHours)
	}
	if south.Pitch != 25.3 {
		t.Errorf("expected pitch 25.3, got %v", south.Pitch)
	}

	north := segments[1]
	if north.Direction != "North" || north.Suitability != "Poor" {
		t.Errorf("expected Poor North segment, got %s %s", north.Direction, north.Suitability)
	}
	if north.PanelCapacity != 20 {
		t.Errorf("expected 20 panels (floor 34.5/1.7), got %d", north.PanelCapacity)
	}
}
