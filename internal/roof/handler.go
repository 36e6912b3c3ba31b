package roof

import (
	"net/http"

	"solar_roi_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the roof analysis endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Analyze handles POST /api/v1/analyze-roof.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	hasCoords := req.Lat != nil && req.Lng != nil
	if req.Address == "" && !hasCoords {
		httpkit.Error(c, http.StatusBadRequest, "address or lat/lng coordinates are required", nil)
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
