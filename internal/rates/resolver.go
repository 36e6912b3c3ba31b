// Package rates resolves the residential electricity rate for a location.
// Resolution degrades through lookup tiers and never fails: live tariff
// database, known city rates, state averages, national average.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"solar_roi_backend/internal/catalog"
	"solar_roi_backend/platform/cache"
	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"
)

// Resolver picks the best available rate for a ZIP/state/city triple.
type Resolver struct {
	catalog  *catalog.Catalog
	openEI   *openEIClient
	cache    *cache.Cache
	cacheTTL time.Duration
	enabled  bool
	log      *logger.Logger
}

func NewResolver(cat *catalog.Catalog, cfg config.RateLookupConfig, cacheCfg config.CacheConfig, lookupCache *cache.Cache, log *logger.Logger) *Resolver {
	return &Resolver{
		catalog:  cat,
		openEI:   newOpenEIClient(cfg, log),
		cache:    lookupCache,
		cacheTTL: cacheCfg.GetRateCacheTTL(),
		enabled:  cfg.IsRateLookupEnabled(),
		log:      log,
	}
}

// Resolve returns the electricity rate for a location. Live lookups are
// cached by ZIP; every failure path degrades to static data.
func (r *Resolver) Resolve(ctx context.Context, zipCode, state, city string) EnergyRate {
	r.log.Debug("resolving energy rate", "zip", zipCode, "state", state, "city", city)

	if r.enabled && zipCode != "" {
		if rate, ok := r.cachedLookup(ctx, zipCode); ok {
			return rate
		}
	}

	return r.staticRate(state, city)
}

func (r *Resolver) cachedLookup(ctx context.Context, zipCode string) (EnergyRate, bool) {
	key := "rate:" + zipCode

	if cached, ok := r.cache.Get(ctx, key); ok {
		var rate EnergyRate
		if err := json.Unmarshal([]byte(cached), &rate); err == nil {
			return rate, true
		}
	}

	rate, err := r.openEI.lookup(ctx, zipCode)
	if err != nil {
		r.log.UpstreamError("openei", "lookup", err)
		return EnergyRate{}, false
	}
	if rate == nil {
		return EnergyRate{}, false
	}

	if encoded, err := json.Marshal(rate); err == nil {
		r.cache.Set(ctx, key, string(encoded), r.cacheTTL)
	}

	return *rate, true
}

// staticRate applies the catalog tiers: deregulated Texas cities, known
// big-city rates, then the state average.
func (r *Resolver) staticRate(state, city string) EnergyRate {
	if state == "TX" {
		return r.texasRate(city)
	}

	if entry, ok := r.catalog.CityRate(state, city); ok {
		return EnergyRate{
			RatePerKWh: entry.Rate,
			Source:     fmt.Sprintf("%s utility average", city),
			Utility:    entry.Utility,
			IsEstimate: false,
		}
	}

	return r.fallbackRate(state)
}

// texasRate handles the deregulated Texas market, where rates vary by city
// and retail provider.
func (r *Resolver) texasRate(city string) EnergyRate {
	utility := "Various providers"
	if utilities := r.catalog.UtilitiesFor("TX"); len(utilities) > 0 {
		utility = utilities[0]
	}

	if entry, ok := r.catalog.CityRate("TX", city); ok {
		return EnergyRate{
			RatePerKWh: entry.Rate,
			Source:     fmt.Sprintf("%s, TX average", city),
			Utility:    utility,
			IsEstimate: false,
			Note:       "Deregulated market - rates vary by provider",
		}
	}

	stateRate, _ := r.catalog.StateRate("TX")
	return EnergyRate{
		RatePerKWh: stateRate,
		Source:     "Texas state average",
		Utility:    utility,
		IsEstimate: true,
		Note:       "Deregulated market - rates vary by provider",
	}
}

func (r *Resolver) fallbackRate(state string) EnergyRate {
	rate, _ := r.catalog.StateRate(state)

	utility := "Local utility"
	if utilities := r.catalog.UtilitiesFor(state); len(utilities) > 0 {
		utility = utilities[0]
	}

	return EnergyRate{
		RatePerKWh: rate,
		Source:     fmt.Sprintf("%s state average (EIA 2024)", state),
		Utility:    utility,
		IsEstimate: true,
	}
}
