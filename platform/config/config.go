// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

// SolarAPIConfig provides settings for the satellite imagery provider.
type SolarAPIConfig interface {
	GetSolarAPIKey() string
	GetSolarAPIBaseURL() string
}

// GeocodingConfig provides settings for the geocoding provider.
type GeocodingConfig interface {
	GetGeocodingAPIKey() string
	GetGeocodingBaseURL() string
}

// RateLookupConfig provides settings for the live utility-rate lookup.
type RateLookupConfig interface {
	GetOpenEIAPIKey() string
	GetOpenEIBaseURL() string
	IsRateLookupEnabled() bool
}

// CacheConfig provides settings for the optional Redis lookup cache.
type CacheConfig interface {
	GetRedisURL() string
	GetRateCacheTTL() time.Duration
}

// Config holds all application configuration.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	RateLimitPerSec   float64
	RateLimitBurst    int
	SolarAPIKey       string
	SolarAPIBaseURL   string
	GeocodingAPIKey   string
	GeocodingBaseURL  string
	OpenEIAPIKey      string
	OpenEIBaseURL     string
	RedisURL          string
	RateCacheTTL      time.Duration
}

// Load reads configuration from the environment (and .env in development).
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":3000"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		CORSAllowCreds:   strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitPerSec:  mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "10")),
		RateLimitBurst:   mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		SolarAPIKey:      getEnv("GOOGLE_SOLAR_API_KEY", ""),
		SolarAPIBaseURL:  getEnv("SOLAR_API_BASE_URL", "https://solar.googleapis.com/v1"),
		GeocodingAPIKey:  getEnv("GEOCODING_API_KEY", ""),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
		OpenEIAPIKey:     getEnv("OPENEI_API_KEY", ""),
		OpenEIBaseURL:    getEnv("OPENEI_BASE_URL", "https://api.openei.org/utility_rates"),
		RedisURL:         getEnv("REDIS_URL", ""),
		RateCacheTTL:     mustDuration(getEnv("RATE_CACHE_TTL", "24h")),
	}

	if cfg.GeocodingAPIKey == "" {
		cfg.GeocodingAPIKey = cfg.SolarAPIKey
	}

	if cfg.SolarAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_SOLAR_API_KEY is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.RateLimitPerSec <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("rate limit settings must be positive")
	}

	return cfg, nil
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string              { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool            { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string         { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool          { return c.CORSAllowCreds }
func (c *Config) GetRateLimitPerSecond() float64   { return c.RateLimitPerSec }
func (c *Config) GetRateLimitBurst() int           { return c.RateLimitBurst }
func (c *Config) GetSolarAPIKey() string           { return c.SolarAPIKey }
func (c *Config) GetSolarAPIBaseURL() string       { return c.SolarAPIBaseURL }
func (c *Config) GetGeocodingAPIKey() string       { return c.GeocodingAPIKey }
func (c *Config) GetGeocodingBaseURL() string      { return c.GeocodingBaseURL }
func (c *Config) GetOpenEIAPIKey() string          { return c.OpenEIAPIKey }
func (c *Config) GetOpenEIBaseURL() string         { return c.OpenEIBaseURL }
func (c *Config) IsRateLookupEnabled() bool        { return c.OpenEIAPIKey != "" }
func (c *Config) GetRedisURL() string              { return c.RedisURL }
func (c *Config) GetRateCacheTTL() time.Duration   { return c.RateCacheTTL }

// =============================================================================
// Helpers
// =============================================================================

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
