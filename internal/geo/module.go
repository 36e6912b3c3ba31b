package geo

import (
	apphttp "solar_roi_backend/internal/http"
	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"
)

// Module wires the geocoding HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(cfg config.GeocodingConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{
		handler: NewHandler(svc),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "geo"
}

// Service exposes the resolver for modules that geocode internally.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/geocode", m.handler.Geocode)
}

var _ apphttp.Module = (*Module)(nil)
