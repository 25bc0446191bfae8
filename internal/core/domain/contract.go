package domain

import (
	"errors"
	"strings"
	"time"
)

// ContractType enumerates the contract modalities recognised by the system.
type ContractType string

const (
	ContractIndefinite ContractType = "Indefinido"
	ContractFixed      ContractType = "Fijo"
	ContractLabor      ContractType = "Obra o Labor"
	ContractServices   ContractType = "Prestación de Servicios"
	ContractApprentice ContractType = "Aprendizaje"
	ContractTemporary  ContractType = "Temporal"
)

// ContractTypes lists every valid contract type, in catalog order.
var ContractTypes = []ContractType{
	ContractIndefinite,
	ContractFixed,
	ContractLabor,
	ContractServices,
	ContractApprentice,
	ContractTemporary,
}

// ContractStatus represents the lifecycle state of a contract.
type ContractStatus string

const (
	ContractActive    ContractStatus = "activo"
	ContractFinished  ContractStatus = "finalizado"
	ContractSuspended ContractStatus = "suspendido"
)

var ErrContractNotFound = errors.New("contract not found")

// IsActive reports whether the contract status counts as active,
// case-insensitively (see EmployeeStatus.IsActive).
func (s ContractStatus) IsActive() bool {
	return strings.EqualFold(string(s), string(ContractActive))
}

// ValidType reports whether t is one of the catalog contract types.
func ValidType(t ContractType) bool {
	for _, known := range ContractTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Contract is an employment contract owned by exactly one employee.
// Dates are ISO YYYY-MM-DD strings; the fixed-width format makes lexical
// comparison equivalent to chronological comparison.
type Contract struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	EmployeeID  string         `json:"employee_id" bson:"employee_id"`
	Type        ContractType   `json:"type" bson:"type"`
	StartDate   string         `json:"start_date" bson:"start_date"`
	EndDate     string         `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Salary      *float64       `json:"salary,omitempty" bson:"salary,omitempty"`
	Status      ContractStatus `json:"status" bson:"status"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}
