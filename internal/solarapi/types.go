package solarapi

import "encoding/json"

// LatLng is a WGS84 coordinate pair as the imagery provider returns it.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLngBox is a bounding box in provider coordinates.
type LatLngBox struct {
	Sw LatLng `json:"sw"`
	Ne LatLng `json:"ne"`
}

// Date is the provider's calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// SizeAndSunshineStats describes the measured surface of a roof plane.
type SizeAndSunshineStats struct {
	AreaMeters2       float64   `json:"areaMeters2"`
	SunshineQuantiles []float64 `json:"sunshineQuantiles"`
	GroundAreaMeters2 float64   `json:"groundAreaMeters2"`
}

// RoofSegmentStat is one detected roof plane.
type RoofSegmentStat struct {
	PitchDegrees              float64              `json:"pitchDegrees"`
	AzimuthDegrees            float64              `json:"azimuthDegrees"`
	Stats                     SizeAndSunshineStats `json:"stats"`
	Center                    LatLng               `json:"center"`
	BoundingBox               *LatLngBox           `json:"boundingBox,omitempty"`
	PlaneHeightAtCenterMeters float64              `json:"planeHeightAtCenterMeters"`
}

// SolarPotential is the provider's rooftop solar summary.
type SolarPotential struct {
	MaxArrayPanelsCount        int               `json:"maxArrayPanelsCount"`
	MaxArrayAreaMeters2        float64           `json:"maxArrayAreaMeters2"`
	MaxSunshineHoursPerYear    float64           `json:"maxSunshineHoursPerYear"`
	CarbonOffsetFactorKgPerMwh float64           `json:"carbonOffsetFactorKgPerMwh"`
	RoofSegmentStats           []RoofSegmentStat `json:"roofSegmentStats"`
}

// BuildingInsights is the closest-building response.
type BuildingInsights struct {
	Name           string          `json:"name"`
	Center         LatLng          `json:"center"`
	ImageryDate    Date            `json:"imageryDate"`
	ImageryQuality string          `json:"imageryQuality"`
	SolarPotential *SolarPotential `json:"solarPotential"`
}

// Data layer types the provider serves.
const (
	LayerMonthlyFlux = "MONTHLY_FLUX"
	LayerAnnualFlux  = "ANNUAL_FLUX"
	LayerHourlyShade = "HOURLY_SHADE"
)

// DataLayerSet holds the raw imagery layers for a building. Any layer the
// provider could not serve is nil; callers degrade to estimated modeling.
type DataLayerSet struct {
	MonthlyFlux json.RawMessage `json:"monthlyFlux"`
	AnnualFlux  json.RawMessage `json:"annualFlux"`
	HourlyShade json.RawMessage `json:"hourlyShade"`
}

// DataLayerRequest is the query for the raw layer proxy endpoint.
type DataLayerRequest struct {
	BuildingName string `form:"buildingName" binding:"required"`
	LayerType    string `form:"layerType" binding:"required,oneof=MONTHLY_FLUX ANNUAL_FLUX HOURLY_SHADE"`
}

// apiError mirrors the provider's error envelope.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
