// Package handler exposes the ROI calculation endpoint.
package handler

import (
	"net/http"
	"strings"

	"solar_roi_backend/internal/roi/service"
	"solar_roi_backend/internal/roi/transport"
	"solar_roi_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Calculate handles POST /api/v1/roi/calculate.
func (h *Handler) Calculate(c *gin.Context) {
	var req transport.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "systemSizeKW, annualProduction and a two-letter state are required", nil)
		return
	}

	req.State = strings.ToUpper(strings.TrimSpace(req.State))

	result, err := h.svc.Calculate(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
