package roof

import (
	"time"

	"solar_roi_backend/internal/solarapi"
)

// AnalyzeRequest asks for a roof analysis by address or coordinates.
type AnalyzeRequest struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

// Segment is one scored roof plane.
type Segment struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Azimuth        int                 `json:"azimuth"`
	Direction      string              `json:"direction"`
	Pitch          float64             `json:"pitch"`
	AreaSqFt       int                 `json:"areaSqFt"`
	AreaSqM        int                 `json:"areaSqM"`
	SunshineHours  float64             `json:"sunshineHours"`
	Efficiency     int                 `json:"efficiency"`
	Suitability    string              `json:"suitability"`
	PanelCapacity  int                 `json:"panelCapacity"`
	Color          string              `json:"color"`
	Recommendation string              `json:"recommendation"`
	Center         solarapi.LatLng     `json:"center"`
	BoundingBox    *solarapi.LatLngBox `json:"boundingBox,omitempty"`
}

// SegmentAnalysis is the per-segment line in the detailed breakdown.
type SegmentAnalysis struct {
	SegmentID      int    `json:"segmentId"`
	Name           string `json:"name"`
	Direction      string `json:"direction"`
	Efficiency     int    `json:"efficiency"`
	Suitability    string `json:"suitability"`
	Recommendation string `json:"recommendation"`
}

// PlannedSegment is a segment slotted into the optimal configuration.
type PlannedSegment struct {
	Name          string  `json:"name"`
	Direction     string  `json:"direction"`
	Efficiency    int     `json:"efficiency"`
	PanelCapacity int     `json:"panelCapacity"`
	EstimatedKW   float64 `json:"estimatedKW"`
	Priority      string  `json:"priority"`
}

// Configuration is the recommended panel layout across usable segments.
type Configuration struct {
	Recommendation      string           `json:"recommendation"`
	TotalPanelCapacity  int              `json:"totalPanelCapacity,omitempty"`
	EstimatedSystemSize float64          `json:"estimatedSystemSize,omitempty"`
	TotalUsableArea     int              `json:"totalUsableArea,omitempty"`
	Segments            []PlannedSegment `json:"segments"`
}

// Summary aggregates segment counts for the analysis.
type Summary struct {
	TotalSegments     int `json:"totalSegments"`
	ExcellentSegments int `json:"excellentSegments"`
	VeryGoodSegments  int `json:"veryGoodSegments"`
	UsableSegments    int `json:"usableSegments"`
	TotalUsableArea   int `json:"totalUsableArea"`
	MaxPanelCapacity  int `json:"maxPanelCapacity"`
}

// Recommendations is the full planner output.
type Recommendations struct {
	PrimaryRecommendation string            `json:"primaryRecommendation"`
	AvoidRecommendation   *string           `json:"avoidRecommendation"`
	Summary               Summary           `json:"summary"`
	OptimalConfiguration  Configuration     `json:"optimalConfiguration"`
	DetailedAnalysis      []SegmentAnalysis `json:"detailedAnalysis"`
}

// PotentialSummary condenses the provider's solar potential figures.
type PotentialSummary struct {
	MaxArrayPanelsCount     int     `json:"maxArrayPanelsCount"`
	MaxArrayAreaMeters2     float64 `json:"maxArrayAreaMeters2"`
	MaxArrayAreaSqFt        int     `json:"maxArrayAreaSqFt"`
	MaxSunshineHoursPerYear float64 `json:"maxSunshineHoursPerYear"`
}

// BuildingSummary identifies the analyzed structure.
type BuildingSummary struct {
	Name           string          `json:"name"`
	Center         solarapi.LatLng `json:"center"`
	ImageryDate    solarapi.Date   `json:"imageryDate"`
	ImageryQuality string          `json:"imageryQuality"`
}

// AnalyzeResponse is the roof analysis envelope.
type AnalyzeResponse struct {
	AnalysisID       string           `json:"analysisId"`
	Address          string           `json:"address"`
	Location         solarapi.LatLng  `json:"location"`
	BuildingInsights BuildingSummary  `json:"buildingInsights"`
	RoofSegments     []Segment        `json:"roofSegments"`
	Recommendations  Recommendations  `json:"recommendations"`
	SolarPotential   PotentialSummary `json:"solarPotential"`
	Timestamp        time.Time        `json:"timestamp"`
}
