package solarapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solar_roi_backend/platform/apperr"
	"solar_roi_backend/platform/logger"
)

type stubSolarConfig struct {
	baseURL string
}

func (s stubSolarConfig) GetSolarAPIKey() string     { return "test-key" }
func (s stubSolarConfig) GetSolarAPIBaseURL() string { return s.baseURL }

const insightsPayload = `{
	"name": "buildings/abc123",
	"center": {"latitude": 30.2672, "longitude": -97.7431},
	"imageryDate": {"year": 2024, "month": 6, "day": 1},
	"imageryQuality": "HIGH",
	"solarPotential": {
		"maxArrayPanelsCount": 40,
		"maxArrayAreaMeters2": 120.5,
		"maxSunshineHoursPerYear": 1650,
		"roofSegmentStats": [
			{
				"pitchDegrees": 25.3,
				"azimuthDegrees": 178.2,
				"stats": {"areaMeters2": 60.2, "sunshineQuantiles": [900, 1200, 1580, 1700, 1800]},
				"center": {"latitude": 30.2672, "longitude": -97.7431}
			}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	client := NewClient(stubSolarConfig{baseURL: server.URL}, logger.New("test"))
	return client, server.Close
}

func TestFindClosestBuilding(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "buildingInsights:findClosest") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("requiredQuality"); got != "HIGH" {
			t.Errorf("expected HIGH quality, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(insightsPayload))
	})
	defer done()

	insights, err := client.FindClosestBuilding(context.Background(), 30.2672, -97.7431)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if insights.Name != "buildings/abc123" {
		t.Errorf("unexpected building name: %s", insights.Name)
	}
	if insights.SolarPotential == nil || len(insights.SolarPotential.RoofSegmentStats) != 1 {
		t.Fatalf("expected one roof segment, got %+v", insights.SolarPotential)
	}

	segment := insights.SolarPotential.RoofSegmentStats[0]
	if segment.Stats.SunshineQuantiles[2] != 1580 {
		t.Errorf("expected median quantile 1580, got %v", segment.Stats.SunshineQuantiles[2])
	}
}

func TestFindClosestBuildingNoCoverage(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": {"code": 404, "message": "Requested entity was not found.", "status": "NOT_FOUND"}}`))
	})
	defer done()

	_, err := client.FindClosestBuilding(context.Background(), 0, 0)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetAllDataLayersBestEffort(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("layerType") {
		case LayerMonthlyFlux:
			_, _ = w.Write([]byte(`{"monthlyFlux": [100, 110, 130]}`))
		case LayerHourlyShade:
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{"annualFlux": 1500}`))
		}
	})
	defer done()

	set := client.GetAllDataLayers(context.Background(), "buildings/abc123")

	if set.MonthlyFlux == nil {
		t.Error("expected monthly flux layer")
	}
	if set.AnnualFlux == nil {
		t.Error("expected annual flux layer")
	}
	if set.HourlyShade != nil {
		t.Error("expected hourly shade to be nil after upstream failure")
	}
}
