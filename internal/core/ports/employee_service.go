package ports

import (
	"context"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// EmployeeInput carries the writable employee fields from the transport layer.
type EmployeeInput struct {
	DocumentNumber string
	Name           string
	Surname        string
	Age            *int
	Gender         string
	Position       string
	Email          string
	Phone          string
	Status         string
	Notes          string
}

// EmployeeService defines the roster use cases. List is read-through: every
// call hits the record store, so mutations are never observed against a stale
// snapshot. Mutations return the written record; the caller re-runs the list
// query it depends on.
type EmployeeService interface {
	List(ctx context.Context) ([]*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, id string, input EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
