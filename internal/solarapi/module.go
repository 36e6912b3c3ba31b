package solarapi

import (
	apphttp "solar_roi_backend/internal/http"
	"solar_roi_backend/platform/config"
	"solar_roi_backend/platform/logger"
)

// Module wires the imagery provider client and its proxy route.
type Module struct {
	handler *Handler
	client  *Client
}

func NewModule(cfg config.SolarAPIConfig, log *logger.Logger) *Module {
	client := NewClient(cfg, log)
	return &Module{
		handler: NewHandler(client),
		client:  client,
	}
}

func (m *Module) Name() string {
	return "solarapi"
}

// Client exposes the provider client for the analysis modules.
func (m *Module) Client() *Client {
	return m.client
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/data-layer", m.handler.GetDataLayer)
	ctx.V1.GET("/data-layers", m.handler.GetAllDataLayers)
}

var _ apphttp.Module = (*Module)(nil)
