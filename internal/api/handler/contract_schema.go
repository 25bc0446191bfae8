package handler

import "time"

type contractRequest struct {
	Type        string   `json:"type"       validate:"required"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
	Status      string   `json:"status" validate:"omitempty,oneof=activo finalizado suspendido"`
	Description string   `json:"description,omitempty"`
}

type contractResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	Type        string    `json:"type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Salary      *float64  `json:"salary,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listContractsResponse struct {
	Data  []contractResponse `json:"data"`
	Total int                `json:"total"`
}
