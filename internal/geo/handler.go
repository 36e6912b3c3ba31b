package geo

import (
	"net/http"

	"solar_roi_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the geocoding endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Geocode handles POST /api/v1/geocode.
func (h *Handler) Geocode(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "address is required (min 5 chars)", nil)
		return
	}

	location, err := h.svc.Resolve(c.Request.Context(), req.Address)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, location)
}
