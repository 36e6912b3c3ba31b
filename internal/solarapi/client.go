package solarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"solar_roi_backend/platform/apperr"
	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

// Client talks to the satellite imagery provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

func NewClient(cfg config.SolarAPIConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    cfg.GetSolarAPIBaseURL(),
		apiKey:     cfg.GetSolarAPIKey(),
		log:        log,
	}
}

// FindClosestBuilding fetches the building insights for the structure
// nearest to the given coordinates.
func (c *Client) FindClosestBuilding(ctx context.Context, lat, lng float64) (*BuildingInsights, error) {
	const op = "solarapi.FindClosestBuilding"

	params := url.Values{}
	params.Set("location.latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("location.longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("requiredQuality", "HIGH")
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/buildingInsights:findClosest?%s", c.baseURL, params.Encode())

	body, status, err := c.get(ctx, reqURL)
	if err != nil {
		c.log.UpstreamError("solarapi", "buildingInsights", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "imagery provider unreachable", err).WithOp(op)
	}

	if status != http.StatusOK {
		message := providerMessage(body)
		if status == http.StatusNotFound {
			return nil, apperr.NotFound("no imagery coverage for this location").WithDetails(message).WithOp(op)
		}
		c.log.Error("imagery provider error", "status", status, "message", message)
		return nil, apperr.Unavailable("imagery provider request failed").WithDetails(message).WithOp(op)
	}

	var insights BuildingInsights
	if err := json.Unmarshal(body, &insights); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "failed to decode building insights", err).WithOp(op)
	}

	return &insights, nil
}

// GetDataLayer fetches a single raw imagery layer for a building.
func (c *Client) GetDataLayer(ctx context.Context, buildingName, layerType string) (json.RawMessage, error) {
	const op = "solarapi.GetDataLayer"

	params := url.Values{}
	params.Set("layerType", layerType)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/%s/dataLayers:get?%s", c.baseURL, buildingName, params.Encode())

	body, status, err := c.get(ctx, reqURL)
	if err != nil {
		c.log.UpstreamError("solarapi", "dataLayers", err)
		return nil, apperr.Wrap(apperr.KindUnavailable, "imagery provider unreachable", err).WithOp(op)
	}

	if status != http.StatusOK {
		return nil, apperr.Unavailable(fmt.Sprintf("failed to fetch %s layer", layerType)).
			WithDetails(providerMessage(body)).WithOp(op)
	}

	return json.RawMessage(body), nil
}

// GetAllDataLayers fetches the three imagery layers concurrently. Each layer
// is best-effort: a failed fetch leaves its slot nil so the production model
// can fall back to estimated output.
func (c *Client) GetAllDataLayers(ctx context.Context, buildingName string) *DataLayerSet {
	set := &DataLayerSet{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if layer, err := c.GetDataLayer(gctx, buildingName, LayerMonthlyFlux); err == nil {
			set.MonthlyFlux = layer
		}
		return nil
	})
	g.Go(func() error {
		if layer, err := c.GetDataLayer(gctx, buildingName, LayerAnnualFlux); err == nil {
			set.AnnualFlux = layer
		}
		return nil
	})
	g.Go(func() error {
		if layer, err := c.GetDataLayer(gctx, buildingName, LayerHourlyShade); err == nil {
			set.HourlyShade = layer
		}
		return nil
	})

	_ = g.Wait()

	return set
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

func providerMessage(body []byte) string {
	var payload apiError
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return "imagery provider request failed"
}
