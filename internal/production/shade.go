package production

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// shadingThreshold is the overall percentage above which a roof counts as
// shaded at all.
const shadingThreshold = 5

// Impact level bounds.
const (
	severeShade   = 60
	highShade     = 35
	moderateShade = 15
)

// dayParts are the productive windows reported to the homeowner.
var dayParts = []struct {
	label      string
	start, end int
}{
	{"6-9 AM", 6, 9},
	{"9 AM - 12 PM", 9, 12},
	{"12-3 PM", 12, 15},
	{"3-6 PM", 15, 18},
}

// AnalyzeShading summarizes an hourly shade payload. Provider layers vary
// wildly in shape, so samples are extracted defensively; a payload with no
// usable samples yields a clean zero-shading result rather than an error.
func (m *Model) AnalyzeShading(raw json.RawMessage) ShadingAnalysis {
	samples := extractShadeSamples(raw)

	if len(samples) == 0 {
		return ShadingAnalysis{
			HasShading:          false,
			OverallShadePercent: 0,
			ImpactLevel:         "Minimal",
			PeakShadingHours:    []PeakShadingPeriod{},
			Recommendations: []string{
				"Google Solar API did not detect meaningful shading on this roof. Panels should perform near their maximum potential.",
			},
			HourlyShadeByHour: []HourlyShade{},
		}
	}

	hourly := aggregateShadeByHour(samples)

	total := 0
	for _, entry := range hourly {
		total += entry.AverageShadePercent
	}
	overall := int(math.Round(float64(total) / float64(len(hourly))))

	periods := make([]PeakShadingPeriod, 0, len(dayParts))
	for _, part := range dayParts {
		sum, count := 0, 0
		for _, entry := range hourly {
			if entry.Hour >= part.start && entry.Hour < part.end {
				sum += entry.AverageShadePercent
				count++
			}
		}

		average := 0
		if count > 0 {
			average = int(math.Round(float64(sum) / float64(count)))
		}
		if average > 0 {
			periods = append(periods, PeakShadingPeriod{
				Time:                part.label,
				Impact:              classifyShadingImpact(average),
				AverageShadePercent: average,
			})
		}
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].AverageShadePercent > periods[j].AverageShadePercent
	})
	if len(periods) > 3 {
		periods = periods[:3]
	}

	hasShading := overall > shadingThreshold

	return ShadingAnalysis{
		HasShading:          hasShading,
		OverallShadePercent: overall,
		ImpactLevel:         classifyShadingImpact(overall),
		PeakShadingHours:    periods,
		Recommendations:     shadingRecommendations(overall, periods, hasShading),
		HourlyShadeByHour:   hourly,
	}
}

func classifyShadingImpact(percent int) string {
	switch {
	case percent >= severeShade:
		return "Severe"
	case percent >= highShade:
		return "High"
	case percent >= moderateShade:
		return "Moderate"
	case percent > 0:
		return "Low"
	default:
		return "Minimal"
	}
}

func shadingRecommendations(overall int, periods []PeakShadingPeriod, hasShading bool) []string {
	if !hasShading {
		return []string{
			"Maintain current tree trimming practices and keep panels clear of debris to preserve excellent production levels.",
		}
	}

	recommendations := []string{
		fmt.Sprintf("Average daily shading is approximately %d%%. Mitigating the identified periods can unlock additional solar production.", overall),
	}

	for _, period := range periods {
		switch period.Impact {
		case "Severe":
			recommendations = append(recommendations,
				fmt.Sprintf("Severe shading detected between %s. Consider removing or trimming nearby trees or obstructions.", period.Time))
		case "High":
			recommendations = append(recommendations,
				fmt.Sprintf("High shading during %s. Strategic panel placement or selective trimming could significantly improve output.", period.Time))
		case "Moderate":
			recommendations = append(recommendations,
				fmt.Sprintf("Moderate shading around %s. Prioritize higher-performing roof planes during this window.", period.Time))
		}
	}

	recommendations = append(recommendations,
		"Request a professional shade study to validate onsite conditions and finalize panel placement.")

	return dedupe(recommendations)
}

// extractShadeSamples pulls hourly observations out of whatever shape the
// provider served: a bare array, a wrapper object, or nested field names.
func extractShadeSamples(raw json.RawMessage) []ShadeSample {
	if len(raw) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}

	container := decoded
	if wrapper, ok := decoded.(map[string]any); ok {
		if inner, exists := wrapper["hourlyShade"]; exists {
			container = inner
		}
	}

	var candidateArrays [][]any
	switch value := container.(type) {
	case []any:
		candidateArrays = append(candidateArrays, value)
	case map[string]any:
		for _, key := range []string{"hourlyShadeValues", "values", "hours", "data", "samples"} {
			if arr, ok := value[key].([]any); ok {
				candidateArrays = append(candidateArrays, arr)
			}
		}
	}

	var samples []ShadeSample
	for _, arr := range candidateArrays {
		for i, entry := range arr {
			if sample, ok := normalizeShadeEntry(entry, i); ok {
				samples = append(samples, sample)
			}
		}
	}

	return samples
}

// normalizeShadeEntry coerces one raw entry into a canonical sample.
// Fractions at or below 1 are treated as ratios and scaled to percent.
func normalizeShadeEntry(entry any, fallbackIndex int) (ShadeSample, bool) {
	if entry == nil {
		return ShadeSample{}, false
	}

	shadeValue, ok := extractShadeValue(entry)
	if !ok {
		return ShadeSample{}, false
	}

	percent := shadeValue
	if percent <= 1 {
		percent *= 100
	}
	percent = math.Max(0, math.Min(100, percent))

	hour := extractHour(entry, fallbackIndex)

	return ShadeSample{
		Hour:         hour,
		ShadePercent: math.Round(percent*10) / 10,
	}, true
}

func extractShadeValue(entry any) (float64, bool) {
	if object, ok := entry.(map[string]any); ok {
		for _, key := range []string{"shadePercent", "shadeFraction", "fractionInShade", "shade", "value", "percentage", "percent"} {
			if value, exists := object[key]; exists {
				if number, ok := asNumber(value); ok {
					return number, true
				}
			}
		}
		return 0, false
	}
	return asNumber(entry)
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	case map[string]any:
		for _, key := range []string{"percent", "percentage", "shadeFraction", "shadePercent", "value"} {
			if inner, ok := v[key].(float64); ok {
				return inner, true
			}
		}
	}
	return 0, false
}

func extractHour(entry any, fallbackIndex int) int {
	hour := -1

	if object, ok := entry.(map[string]any); ok {
		for _, key := range []string{"hour", "hourOfDay", "localHour", "hourIndex"} {
			if value, ok := asNumber(object[key]); ok {
				hour = int(math.Floor(value))
				break
			}
		}

		if hour < 0 {
			for _, key := range []string{"timestamp", "datetime"} {
				if text, ok := object[key].(string); ok {
					if parsed, err := time.Parse(time.RFC3339, text); err == nil {
						hour = parsed.Hour()
						break
					}
				}
			}
		}
	}

	if hour < 0 {
		hour = fallbackIndex % 24
	}

	if hour < 0 {
		return 0
	}
	if hour > 23 {
		return 23
	}
	return hour
}

// aggregateShadeByHour averages samples per hour of day, sorted by hour.
func aggregateShadeByHour(samples []ShadeSample) []HourlyShade {
	sums := map[int]float64{}
	counts := map[int]int{}
	for _, sample := range samples {
		sums[sample.Hour] += sample.ShadePercent
		counts[sample.Hour]++
	}

	hours := make([]int, 0, len(sums))
	for hour := range sums {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	result := make([]HourlyShade, 0, len(hours))
	for _, hour := range hours {
		result = append(result, HourlyShade{
			Hour:                hour,
			AverageShadePercent: int(math.Round(sums[hour] / float64(counts[hour]))),
		})
	}
	return result
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
