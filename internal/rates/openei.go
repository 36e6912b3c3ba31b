package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"
)

// openEIClient looks up live residential tariffs by ZIP code.
type openEIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

func newOpenEIClient(cfg config.RateLookupConfig, log *logger.Logger) *openEIClient {
	return &openEIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.GetOpenEIBaseURL(),
		apiKey:     cfg.GetOpenEIAPIKey(),
		log:        log,
	}
}

// lookup returns the first residential tariff for a ZIP code, or nil when
// the database has nothing usable. Errors surface to the caller so the
// resolver can fall back, never fail.
func (c *openEIClient) lookup(ctx context.Context, zipCode string) (*EnergyRate, error) {
	params := url.Values{}
	params.Set("version", "latest")
	params.Set("format", "json")
	params.Set("api_key", c.apiKey)
	params.Set("address", zipCode)

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate database returned %d", resp.StatusCode)
	}

	var payload openEIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	for _, item := range payload.Items {
		if !strings.Contains(strings.ToLower(item.Sector), "residential") {
			continue
		}
		if len(item.EnergyRateStructure) == 0 || item.EnergyRateStructure[0].Rate == 0 {
			continue
		}

		utility := item.Utility
		if utility == "" {
			utility = "Local utility"
		}
		tariff := item.Name
		if tariff == "" {
			tariff = "Residential"
		}

		return &EnergyRate{
			RatePerKWh: item.EnergyRateStructure[0].Rate,
			Source:     "OpenEI Database",
			Utility:    utility,
			IsEstimate: false,
			TariffName: tariff,
		}, nil
	}

	return nil, nil
}
