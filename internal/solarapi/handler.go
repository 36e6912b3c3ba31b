package solarapi

import (
	"net/http"

	"solar_roi_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the raw data layer proxy.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

// GetDataLayer handles GET /api/v1/data-layer?buildingName=...&layerType=...
// It proxies the provider payload untouched so frontends can render imagery
// overlays without holding an API key.
func (h *Handler) GetDataLayer(c *gin.Context) {
	var req DataLayerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "buildingName and layerType are required", nil)
		return
	}

	layer, err := h.client.GetDataLayer(c.Request.Context(), req.BuildingName, req.LayerType)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Data(http.StatusOK, "application/json", layer)
}

// GetAllDataLayers handles GET /api/v1/data-layers?buildingName=...
// It returns whichever of the three layers the provider could serve; missing
// layers come back null and clients fall back to estimated output.
func (h *Handler) GetAllDataLayers(c *gin.Context) {
	buildingName := c.Query("buildingName")
	if buildingName == "" {
		httpkit.Error(c, http.StatusBadRequest, "buildingName is required", nil)
		return
	}

	set := h.client.GetAllDataLayers(c.Request.Context(), buildingName)
	httpkit.OK(c, set)
}
