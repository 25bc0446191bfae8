package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/api/metrics"
	"github.com/sirh-molino/hr-api/internal/core/ports"
	"github.com/sirh-molino/hr-api/internal/core/service"
)

// EmployeeHandler handles HTTP requests for the employee roster.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(svc ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: svc}
}

// List handles GET /v1/employees.
//
// @Summary      List employees
// @Description  Returns the full roster, optionally narrowed by a case-insensitive search over name, surname and document number.
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        q  query     string  false  "Search term"
// @Success      200  {object}  listEmployeesResponse
// @Failure      401  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	roster, err := h.service.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	filtered := service.Filter(roster, c.QueryParam("q"))
	return c.JSON(http.StatusOK, toEmployeeListResponse(filtered, len(roster)))
}

// Get handles GET /v1/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Employee ID"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Create handles POST /v1/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	employee, err := h.service.Create(c.Request().Context(), toEmployeeInput(req))
	if err != nil {
		return jsonError(c, err)
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "create").Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(employee))
}

// Update handles PUT /v1/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee ID"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	employee, err := h.service.Update(c.Request().Context(), c.Param("id"), toEmployeeInput(req))
	if err != nil {
		return jsonError(c, err)
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "update").Inc()
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Delete handles DELETE /v1/employees/:id. Removing an employee also removes
// every contract attached to them.
//
// @Summary      Delete an employee and their contracts
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return jsonError(c, err)
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
