package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/api/metrics"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// ExportHandler serves roster and ledger downloads (PDF and Excel).
type ExportHandler struct {
	service ports.ExportService
}

func NewExportHandler(svc ports.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Employees handles GET /v1/exports/employees.
//
// @Summary      Export the employee roster
// @Description  Generates a PDF or Excel file of the roster, honoring the same search filter as the list endpoint.
// @Tags         exports
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        format  query  string  true   "Artifact format"  Enums(pdf, xlsx)
// @Param        q       query  string  false  "Search term"
// @Success      200  {file}    file
// @Failure      422  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/exports/employees [get]
func (h *ExportHandler) Employees(c echo.Context) error {
	artifact, err := h.service.Employees(c.Request().Context(), c.QueryParam("format"), c.QueryParam("q"))
	if err != nil {
		return jsonError(c, err)
	}

	metrics.ExportsTotal.WithLabelValues(c.QueryParam("format"), "employees").Inc()
	return serveArtifact(c, artifact)
}

// Contracts handles GET /v1/exports/employees/:id/contracts.
//
// @Summary      Export an employee's contract ledger
// @Tags         exports
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id      path   string  true  "Employee ID"
// @Param        format  query  string  true  "Artifact format"  Enums(pdf, xlsx)
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/exports/employees/{id}/contracts [get]
func (h *ExportHandler) Contracts(c echo.Context) error {
	artifact, err := h.service.Contracts(c.Request().Context(), c.Param("id"), c.QueryParam("format"))
	if err != nil {
		return jsonError(c, err)
	}

	metrics.ExportsTotal.WithLabelValues(c.QueryParam("format"), "contracts").Inc()
	return serveArtifact(c, artifact)
}

func serveArtifact(c echo.Context, artifact *ports.ExportArtifact) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, artifact.Filename))
	return c.Blob(http.StatusOK, artifact.ContentType, artifact.Content)
}
