package production

import "encoding/json"

// MonthlyEstimate is expected output for one calendar month.
type MonthlyEstimate struct {
	Month               string `json:"month"`
	SolarIrradiance     int    `json:"solarIrradiance"`
	EstimatedProduction int    `json:"estimatedProduction"`
}

// SeasonStats groups monthly estimates with their mean production.
type SeasonStats struct {
	Avg    int               `json:"avg"`
	Months []MonthlyEstimate `json:"months"`
}

// SeasonalBreakdown partitions the year into meteorological seasons.
type SeasonalBreakdown struct {
	Winter SeasonStats `json:"winter"`
	Spring SeasonStats `json:"spring"`
	Summer SeasonStats `json:"summer"`
	Fall   SeasonStats `json:"fall"`
}

// ShadeSample is one normalized hourly shade observation.
type ShadeSample struct {
	Hour         int     `json:"hour"`
	ShadePercent float64 `json:"shadePercent"`
}

// HourlyShade is the mean shade for one hour of the day.
type HourlyShade struct {
	Hour                int `json:"hour"`
	AverageShadePercent int `json:"averageShadePercent"`
}

// PeakShadingPeriod is a day-part with notable shading.
type PeakShadingPeriod struct {
	Time                string `json:"time"`
	Impact              string `json:"impact"`
	AverageShadePercent int    `json:"averageShadePercent"`
}

// ShadingAnalysis summarizes roof shading from provider imagery.
type ShadingAnalysis struct {
	HasShading          bool                `json:"hasShading"`
	OverallShadePercent int                 `json:"overallShadePercent"`
	ImpactLevel         string              `json:"impactLevel"`
	PeakShadingHours    []PeakShadingPeriod `json:"peakShadingHours"`
	Recommendations     []string            `json:"recommendations"`
	HourlyShadeByHour   []HourlyShade       `json:"hourlyShadeByHour"`
}

// EstimateRequest asks for a production model from potential figures plus
// optional imagery data.
type EstimateRequest struct {
	MaxSunshineHoursPerYear float64         `json:"maxSunshineHoursPerYear" binding:"required,gt=0"`
	SystemSizeKW            float64         `json:"systemSizeKw" binding:"required,gt=0"`
	MonthlyFlux             []float64       `json:"monthlyFlux"`
	HourlyShade             json.RawMessage `json:"hourlyShade"`
}

// EstimateResponse is the production model envelope.
type EstimateResponse struct {
	Monthly          []MonthlyEstimate `json:"monthlyProduction"`
	Seasonal         SeasonalBreakdown `json:"seasonalVariation"`
	AnnualProduction int               `json:"annualProduction"`
	Shading          ShadingAnalysis   `json:"shading"`
	DataSource       string            `json:"dataSource"`
}
