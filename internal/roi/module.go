// Package roi wires the financial analysis module: rate resolution,
// incentive matching, the projection and the purchase score.
package roi

import (
	"solar_roi_backend/internal/catalog"
	apphttp "solar_roi_backend/internal/http"
	"solar_roi_backend/internal/incentives"
	"solar_roi_backend/internal/rates"
	"solar_roi_backend/internal/roi/handler"
	"solar_roi_backend/internal/roi/service"
	"solar_roi_backend/platform/logger"
)

// Module wires the ROI HTTP routes.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(cat *catalog.Catalog, rateResolver *rates.Resolver, incentiveResolver *incentives.Resolver, log *logger.Logger) *Module {
	svc := service.NewService(cat, rateResolver, incentiveResolver, log)
	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "roi"
}

// Service exposes the calculator for non-HTTP callers.
func (m *Module) Service() *service.Service {
	return m.service
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/roi/calculate", m.handler.Calculate)
}

var _ apphttp.Module = (*Module)(nil)
