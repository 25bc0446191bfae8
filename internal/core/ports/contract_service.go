package ports

import (
	"context"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// ContractInput carries the writable contract fields from the transport layer.
// Dates are ISO YYYY-MM-DD strings; Salary is nil when absent.
type ContractInput struct {
	Type        string
	StartDate   string
	EndDate     string
	Salary      *float64
	Status      string
	Description string
}

// ContractService defines the per-employee contract ledger use cases.
type ContractService interface {
	ListForEmployee(ctx context.Context, employeeID string) ([]*domain.Contract, error)
	// Save inserts a new contract when contractID is empty, otherwise updates
	// the existing one. Validation failures surface domain.ErrValidation
	// before any store call.
	Save(ctx context.Context, employeeID, contractID string, input ContractInput) (*domain.Contract, error)
	Delete(ctx context.Context, employeeID, contractID string) error
}
