package ports

import (
	"context"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// ContractRepository defines persistence operations for the per-employee
// contract sequence (the document-store path employees/{id}/contracts).
type ContractRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Contract, error)
	FindByID(ctx context.Context, employeeID, contractID string) (*domain.Contract, error)
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, employeeID, contractID string) error
	// DeleteByEmployee removes every contract owned by the employee. Used by
	// the cascade on employee deletion.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
