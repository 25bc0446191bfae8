package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// EmployeeService implements the roster use cases over the record store.
type EmployeeService struct {
	repo      ports.EmployeeRepository
	contracts ports.ContractRepository
	logger    zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, contracts ports.ContractRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, contracts: contracts, logger: logger}
}

// List returns the full roster. Result ordering is store-defined. On store
// failure the previously rendered data stays with the caller; no cached state
// is cleared here because there is none.
func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list employees")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the input, rejects duplicate document numbers, and inserts
// the employee with creation/update timestamps. The pre-check gives a friendly
// error in the common case; the store's unique index on document_number closes
// the race between concurrent creators.
func (s *EmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := validateEmployee(input); err != nil {
		return nil, err
	}

	documentNumber := strings.TrimSpace(input.DocumentNumber)
	if _, err := s.repo.FindByDocument(ctx, documentNumber); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateDocument, documentNumber)
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	now := time.Now().UTC()
	employee := employeeFromInput(input)
	employee.CreatedAt = now
	employee.UpdatedAt = now

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDocument) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("document", documentNumber).Msg("failed to create employee")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info().Str("employee_id", created.ID).Str("document", created.DocumentNumber).Msg("employee created")
	return created, nil
}

// Update validates the input and replaces the employee's writable fields.
// The document number is mutable; there is no pre-check here, the store's
// unique index reports a collision as ErrDuplicateDocument.
func (s *EmployeeService) Update(ctx context.Context, id string, input ports.EmployeeInput) (*domain.Employee, error) {
	if err := validateEmployee(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee := employeeFromInput(input)
	employee.ID = existing.ID
	employee.CreatedAt = existing.CreatedAt
	employee.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrDuplicateDocument) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("employee_id", id).Msg("failed to update employee")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info().Str("employee_id", id).Msg("employee updated")
	return employee, nil
}

// Delete removes the employee and cascades to its contracts so no orphaned
// ledger entries remain. Contracts go first: a failure there leaves the
// aggregate root intact and the operation retryable.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.contracts.DeleteByEmployee(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("employee_id", id).Msg("failed to delete employee contracts")
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("employee_id", id).Msg("failed to delete employee")
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.logger.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

// Filter narrows a roster by a case-insensitive substring match against name,
// surname, and document number. An empty term matches everything; input order
// is preserved. Pure function: safe to run on every keystroke.
func Filter(roster []*domain.Employee, term string) []*domain.Employee {
	if term == "" {
		return roster
	}

	needle := strings.ToLower(term)
	matched := make([]*domain.Employee, 0, len(roster))
	for _, e := range roster {
		if strings.Contains(strings.ToLower(e.Name), needle) ||
			strings.Contains(strings.ToLower(e.Surname), needle) ||
			strings.Contains(strings.ToLower(e.DocumentNumber), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

func validateEmployee(input ports.EmployeeInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Surname) == "" {
		return fmt.Errorf("%w: el apellido es obligatorio", domain.ErrValidation)
	}
	if strings.TrimSpace(input.DocumentNumber) == "" {
		return fmt.Errorf("%w: el número de documento es obligatorio", domain.ErrValidation)
	}
	if input.Email != "" && !strings.Contains(input.Email, "@") {
		return fmt.Errorf("%w: el correo electrónico no es válido", domain.ErrValidation)
	}
	return nil
}

func employeeFromInput(input ports.EmployeeInput) *domain.Employee {
	status := domain.EmployeeStatus(input.Status)
	if status == "" {
		status = domain.EmployeeActive
	}
	return &domain.Employee{
		DocumentNumber: strings.TrimSpace(input.DocumentNumber),
		Name:           strings.TrimSpace(input.Name),
		Surname:        strings.TrimSpace(input.Surname),
		Age:            input.Age,
		Gender:         input.Gender,
		Position:       input.Position,
		Email:          input.Email,
		Phone:          input.Phone,
		Status:         status,
		Notes:          input.Notes,
	}
}
