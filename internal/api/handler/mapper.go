package handler

import (
	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// --- Request → Service input ---

func toEmployeeInput(req employeeRequest) ports.EmployeeInput {
	return ports.EmployeeInput{
		DocumentNumber: req.DocumentNumber,
		Name:           req.Name,
		Surname:        req.Surname,
		Age:            req.Age,
		Gender:         req.Gender,
		Position:       req.Position,
		Email:          req.Email,
		Phone:          req.Phone,
		Status:         req.Status,
		Notes:          req.Notes,
	}
}

func toContractInput(req contractRequest) ports.ContractInput {
	return ports.ContractInput{
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Salary:      req.Salary,
		Status:      req.Status,
		Description: req.Description,
	}
}

// --- Domain → HTTP response ---

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:             e.ID,
		DocumentNumber: e.DocumentNumber,
		Name:           e.Name,
		Surname:        e.Surname,
		Age:            e.Age,
		Gender:         e.Gender,
		Position:       e.Position,
		Email:          e.Email,
		Phone:          e.Phone,
		Status:         string(e.Status),
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toEmployeeListResponse(filtered []*domain.Employee, total int) listEmployeesResponse {
	items := make([]employeeResponse, len(filtered))
	for i, e := range filtered {
		items[i] = toEmployeeResponse(e)
	}
	return listEmployeesResponse{
		Data:     items,
		Total:    total,
		Filtered: len(items),
	}
}

func toContractResponse(ct *domain.Contract) contractResponse {
	return contractResponse{
		ID:          ct.ID,
		EmployeeID:  ct.EmployeeID,
		Type:        string(ct.Type),
		StartDate:   ct.StartDate,
		EndDate:     ct.EndDate,
		Salary:      ct.Salary,
		Status:      string(ct.Status),
		Description: ct.Description,
		CreatedAt:   ct.CreatedAt,
		UpdatedAt:   ct.UpdatedAt,
	}
}

func toContractListResponse(contracts []*domain.Contract) listContractsResponse {
	items := make([]contractResponse, len(contracts))
	for i, ct := range contracts {
		items[i] = toContractResponse(ct)
	}
	return listContractsResponse{Data: items, Total: len(items)}
}
