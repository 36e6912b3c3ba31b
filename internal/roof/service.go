package roof

import (
	"context"
	"math"
	"time"

	"solar_roi_backend/internal/geo"
	"solar_roi_backend/internal/solarapi"
	"solar_roi_backend/platform/apperr"
	"solar_roi_backend/platform/logger"

	"github.com/google/uuid"
)

// Service orchestrates a full roof analysis: resolve coordinates, fetch
// building insights, score the planes and design a configuration.
type Service struct {
	solar   *solarapi.Client
	geo     *geo.Service
	scorer  *Scorer
	planner *Planner
	log     *logger.Logger
}

func NewService(solar *solarapi.Client, geoSvc *geo.Service, log *logger.Logger) *Service {
	return &Service{
		solar:   solar,
		geo:     geoSvc,
		scorer:  NewScorer(),
		planner: NewPlanner(),
		log:     log,
	}
}

// Analyze runs the roof analysis for an address or coordinate pair.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	const op = "roof.Analyze"

	var lat, lng float64
	address := req.Address

	if req.Lat != nil && req.Lng != nil {
		lat, lng = *req.Lat, *req.Lng
	} else {
		location, err := s.geo.Resolve(ctx, req.Address)
		if err != nil {
			return nil, err
		}
		lat, lng = location.Lat, location.Lng
		address = location.FormattedAddress
	}

	s.log.Info("analyzing roof", "address", address, "lat", lat, "lng", lng)

	insights, err := s.solar.FindClosestBuilding(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	if insights.SolarPotential == nil || len(insights.SolarPotential.RoofSegmentStats) == 0 {
		return nil, apperr.NotFound("no roof segment data available").WithOp(op)
	}

	segments := s.scorer.Score(insights.SolarPotential.RoofSegmentStats)
	recommendations := s.planner.Plan(segments)

	return &AnalyzeResponse{
		AnalysisID: uuid.NewString(),
		Address:    address,
		Location:   solarapi.LatLng{Latitude: lat, Longitude: lng},
		BuildingInsights: BuildingSummary{
			Name:           insights.Name,
			Center:         insights.Center,
			ImageryDate:    insights.ImageryDate,
			ImageryQuality: insights.ImageryQuality,
		},
		RoofSegments:    segments,
		Recommendations: recommendations,
		SolarPotential: PotentialSummary{
			MaxArrayPanelsCount:     insights.SolarPotential.MaxArrayPanelsCount,
			MaxArrayAreaMeters2:     insights.SolarPotential.MaxArrayAreaMeters2,
			MaxArrayAreaSqFt:        int(math.Round(insights.SolarPotential.MaxArrayAreaMeters2 * sqMetersToSqFt)),
			MaxSunshineHoursPerYear: insights.SolarPotential.MaxSunshineHoursPerYear,
		},
		Timestamp: time.Now().UTC(),
	}, nil
}
