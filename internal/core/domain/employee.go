package domain

import (
	"errors"
	"strings"
	"time"
)

// EmployeeStatus represents the employment state of an employee.
type EmployeeStatus string

const (
	EmployeeActive  EmployeeStatus = "activo"
	EmployeeRetired EmployeeStatus = "retirado"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrDuplicateDocument = errors.New("document number already registered")
var ErrValidation = errors.New("validation failed")
var ErrStoreUnavailable = errors.New("record store unavailable")

// IsActive reports whether the status counts as active. Historical records
// carry mixed casing ("activo", "ACTIVO"), so the comparison is
// case-insensitive; any other value counts as retired.
func (s EmployeeStatus) IsActive() bool {
	return strings.EqualFold(string(s), string(EmployeeActive))
}

// Employee is the aggregate root of the HR record system. Contracts belong to
// exactly one employee and have no independent lifecycle.
type Employee struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	DocumentNumber string         `json:"document_number" bson:"document_number"`
	Name           string         `json:"name" bson:"name"`
	Surname        string         `json:"surname" bson:"surname"`
	Age            *int           `json:"age,omitempty" bson:"age,omitempty"`
	Gender         string         `json:"gender,omitempty" bson:"gender,omitempty"`
	Position       string         `json:"position,omitempty" bson:"position,omitempty"`
	Email          string         `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Status         EmployeeStatus `json:"status" bson:"status"`
	Notes          string         `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// FullName joins name and surname for display and logging.
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.Name + " " + e.Surname)
}
