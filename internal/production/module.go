package production

import (
	apphttp "solar_roi_backend/internal/http"
)

// Module wires the production modeling HTTP routes.
type Module struct {
	handler *Handler
	model   *Model
}

func NewModule() *Module {
	model := NewModel()
	return &Module{
		handler: NewHandler(model),
		model:   model,
	}
}

func (m *Module) Name() string {
	return "production"
}

// Model exposes the production model for the ROI pipeline.
func (m *Module) Model() *Model {
	return m.model
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/production", m.handler.Estimate)
}

var _ apphttp.Module = (*Module)(nil)
