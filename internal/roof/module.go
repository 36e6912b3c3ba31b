package roof

import (
	"solar_roi_backend/internal/geo"
	apphttp "solar_roi_backend/internal/http"
	"solar_roi_backend/internal/solarapi"
	"solar_roi_backend/platform/logger"
)

// Module wires the roof analysis HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(solar *solarapi.Client, geoSvc *geo.Service, log *logger.Logger) *Module {
	svc := NewService(solar, geoSvc, log)
	return &Module{handler: NewHandler(svc)}
}

func (m *Module) Name() string {
	return "roof"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/analyze-roof", m.handler.Analyze)
}

var _ apphttp.Module = (*Module)(nil)
