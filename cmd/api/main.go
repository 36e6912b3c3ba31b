package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solar_roi_backend/internal/catalog"
	"solar_roi_backend/internal/geo"
	apphttp "solar_roi_backend/internal/http"
	"solar_roi_backend/internal/incentives"
	"solar_roi_backend/internal/production"
	"solar_roi_backend/internal/rates"
	"solar_roi_backend/internal/roi"
	"solar_roi_backend/internal/roof"
	"solar_roi_backend/internal/solarapi"
	"solar_roi_backend/platform/cache"
	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	cat, err := catalog.Load()
	if err != nil {
		log.Error("failed to load reference catalog", "error", err)
		panic("failed to load reference catalog: " + err.Error())
	}
	log.Info("reference catalog loaded", "states", len(cat.StateRates))

	lookupCache := initLookupCache(cfg, log)
	if lookupCache != nil {
		defer func() {
			_ = lookupCache.Close()
		}()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	geoModule := geo.NewModule(cfg, log)
	solarModule := solarapi.NewModule(cfg, log)
	roofModule := roof.NewModule(solarModule.Client(), geoModule.Service(), log)
	productionModule := production.NewModule()

	rateResolver := rates.NewResolver(cat, cfg, cfg, lookupCache, log)
	incentiveResolver := incentives.NewResolver(cat)
	roiModule := roi.NewModule(cat, rateResolver, incentiveResolver, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	engine := apphttp.NewRouter(cfg, log, []apphttp.Module{
		geoModule,
		solarModule,
		roofModule,
		productionModule,
		roiModule,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initLookupCache connects the optional Redis cache. The app runs without
// it; lookups just skip caching.
func initLookupCache(cfg *config.Config, log *logger.Logger) *cache.Cache {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; rate lookup caching disabled")
		return nil
	}

	lookupCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis, continuing without cache", "error", err)
		return nil
	}

	log.Info("rate lookup cache connected")
	return lookupCache
}
