package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"solar_roi_backend/platform/apperr"
	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"
)

type Service struct {
	client  *http.Client
	baseURL string
	apiKey  string
	log     *logger.Logger
}

func NewService(cfg config.GeocodingConfig, log *logger.Logger) *Service {
	return &Service{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: cfg.GetGeocodingBaseURL(),
		apiKey:  cfg.GetGeocodingAPIKey(),
		log:     log,
	}
}

// Resolve geocodes a free-form address into coordinates plus the address
// components the rate and incentive lookups need (city, state, ZIP).
func (s *Service) Resolve(ctx context.Context, address string) (Location, error) {
	const op = "geo.Resolve"

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", s.apiKey)

	reqURL := fmt.Sprintf("%s?%s", s.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Location{}, apperr.Wrap(apperr.KindInternal, "failed to build geocoding request", err).WithOp(op)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.UpstreamError("geocoding", "resolve", err)
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "geocoding service unreachable", err).WithOp(op)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.log.Error("geocoding upstream error", "status", resp.StatusCode)
		return Location{}, apperr.Unavailable(fmt.Sprintf("geocoding upstream error: %d", resp.StatusCode)).WithOp(op)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, apperr.Wrap(apperr.KindUnavailable, "failed to decode geocoding payload", err).WithOp(op)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return Location{}, apperr.NotFound("address not found").WithOp(op)
	}

	result := payload.Results[0]
	loc := Location{
		Lat:              result.Geometry.Location.Lat,
		Lng:              result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
		PlaceID:          result.PlaceID,
	}

	for _, component := range result.AddressComponents {
		switch {
		case slices.Contains(component.Types, "postal_code"):
			loc.ZipCode = component.LongName
		case slices.Contains(component.Types, "locality"):
			loc.City = component.LongName
		case slices.Contains(component.Types, "administrative_area_level_1"):
			loc.State = component.ShortName
		case slices.Contains(component.Types, "administrative_area_level_2"):
			loc.County = component.LongName
		}
	}

	return loc, nil
}
