package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/api/metrics"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// ReportHandler handles HTTP requests for derived KPI reports.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(svc ports.ReportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// KPIs handles GET /v1/reports/kpis. The snapshot is recomputed from the
// record store on every request.
//
// @Summary      Get the KPI dashboard snapshot
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.KPISnapshot
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/reports/kpis [get]
func (h *ReportHandler) KPIs(c echo.Context) error {
	start := time.Now()
	snapshot, err := h.service.Build(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	metrics.ReportBuildDuration.Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, snapshot)
}
