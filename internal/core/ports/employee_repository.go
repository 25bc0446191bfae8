package ports

import (
	"context"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// EmployeeRepository defines persistence operations for the employees
// collection. List performs a full-collection scan; the store defines the
// result order, so callers needing determinism sort locally.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// FindByDocument retrieves an employee by business key. Returns
	// domain.ErrEmployeeNotFound when no record matches.
	FindByDocument(ctx context.Context, documentNumber string) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
