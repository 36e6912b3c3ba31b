package production

import (
	"net/http"

	"solar_roi_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the production modeling endpoint.
type Handler struct {
	model *Model
}

func NewHandler(model *Model) *Handler {
	return &Handler{model: model}
}

// Estimate handles POST /api/v1/production.
func (h *Handler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "maxSunshineHoursPerYear and systemSizeKw must be positive", nil)
		return
	}

	var monthly []MonthlyEstimate
	dataSource := "estimated"
	if len(req.MonthlyFlux) > 0 {
		monthly = h.model.FromFlux(req.MonthlyFlux)
		dataSource = "measured"
	} else {
		monthly = h.model.Estimated(req.MaxSunshineHoursPerYear, req.SystemSizeKW)
	}

	httpkit.OK(c, EstimateResponse{
		Monthly:          monthly,
		Seasonal:         h.model.Seasonal(monthly),
		AnnualProduction: h.model.AnnualTotal(monthly),
		Shading:          h.model.AnalyzeShading(req.HourlyShade),
		DataSource:       dataSource,
	})
}
