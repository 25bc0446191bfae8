package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/api/metrics"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// ContractHandler handles HTTP requests for the per-employee contract ledger.
type ContractHandler struct {
	service ports.ContractService
}

func NewContractHandler(svc ports.ContractService) *ContractHandler {
	return &ContractHandler{service: svc}
}

// List handles GET /v1/employees/:id/contracts.
//
// @Summary      List an employee's contracts
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Employee ID"
// @Success      200  {object}  listContractsResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id}/contracts [get]
func (h *ContractHandler) List(c echo.Context) error {
	contracts, err := h.service.ListForEmployee(c.Request().Context(), c.Param("id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, toContractListResponse(contracts))
}

// Create handles POST /v1/employees/:id/contracts.
//
// @Summary      Create a contract for an employee
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Employee ID"
// @Param        body  body      contractRequest  true  "Contract details"
// @Success      201   {object}  contractResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/employees/{id}/contracts [post]
func (h *ContractHandler) Create(c echo.Context) error {
	var req contractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	contract, err := h.service.Save(c.Request().Context(), c.Param("id"), "", toContractInput(req))
	if err != nil {
		return jsonError(c, err)
	}

	metrics.RecordMutationsTotal.WithLabelValues("contract", "create").Inc()
	return c.JSON(http.StatusCreated, toContractResponse(contract))
}

// Update handles PUT /v1/employees/:id/contracts/:contract_id.
//
// @Summary      Update a contract
// @Tags         contracts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string           true  "Employee ID"
// @Param        contract_id  path      string           true  "Contract ID"
// @Param        body         body      contractRequest  true  "Contract details"
// @Success      200          {object}  contractResponse
// @Failure      400          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Failure      422          {object}  errorResponse
// @Router       /v1/employees/{id}/contracts/{contract_id} [put]
func (h *ContractHandler) Update(c echo.Context) error {
	var req contractRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	contract, err := h.service.Save(c.Request().Context(), c.Param("id"), c.Param("contract_id"), toContractInput(req))
	if err != nil {
		return jsonError(c, err)
	}

	metrics.RecordMutationsTotal.WithLabelValues("contract", "update").Inc()
	return c.JSON(http.StatusOK, toContractResponse(contract))
}

// Delete handles DELETE /v1/employees/:id/contracts/:contract_id.
//
// @Summary      Delete a contract
// @Tags         contracts
// @Produce      json
// @Security     BearerAuth
// @Param        id           path  string  true  "Employee ID"
// @Param        contract_id  path  string  true  "Contract ID"
// @Success      204  "No Content"
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id}/contracts/{contract_id} [delete]
func (h *ContractHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), c.Param("contract_id")); err != nil {
		return jsonError(c, err)
	}

	metrics.RecordMutationsTotal.WithLabelValues("contract", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
