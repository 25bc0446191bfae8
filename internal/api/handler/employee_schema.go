package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// employeeRequest carries the writable employee fields. Business rules beyond
// presence (duplicate document, email shape) are enforced by the service.
type employeeRequest struct {
	DocumentNumber string `json:"document_number" validate:"required"`
	Name           string `json:"name"            validate:"required"`
	Surname        string `json:"surname"         validate:"required"`
	Age            *int   `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Position       string `json:"position,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status" validate:"omitempty,oneof=activo retirado"`
	Notes          string `json:"notes,omitempty"`
}

// employeeResponse is the transport shape of one employee record.
// Intentionally separate from the domain type so the JSON contract is not
// coupled to internal changes.
type employeeResponse struct {
	ID             string    `json:"id"`
	DocumentNumber string    `json:"document_number"`
	Name           string    `json:"name"`
	Surname        string    `json:"surname"`
	Age            *int      `json:"age,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	Position       string    `json:"position,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// listEmployeesResponse carries the (optionally filtered) roster. Filtered
// reports the post-filter count, Total the full roster size.
type listEmployeesResponse struct {
	Data     []employeeResponse `json:"data"`
	Total    int                `json:"total"`
	Filtered int                `json:"filtered"`
}
