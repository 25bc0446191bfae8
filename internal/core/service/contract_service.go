package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// ContractService implements the per-employee contract ledger.
type ContractService struct {
	repo      ports.ContractRepository
	employees ports.EmployeeRepository
	logger    zerolog.Logger
}

func NewContractService(repo ports.ContractRepository, employees ports.EmployeeRepository, logger zerolog.Logger) *ContractService {
	return &ContractService{repo: repo, employees: employees, logger: logger}
}

// ListForEmployee returns the employee's contracts in store-defined order.
// A missing employee surfaces domain.ErrEmployeeNotFound so the caller can
// redirect to the listing view.
func (s *ContractService) ListForEmployee(ctx context.Context, employeeID string) ([]*domain.Contract, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	contracts, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error().Err(err).Str("employee_id", employeeID).Msg("failed to list contracts")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return contracts, nil
}

// Save validates and writes one contract. An empty contractID inserts with a
// creation timestamp; otherwise the existing contract is updated in place.
// The update timestamp is always stamped. Validation rejects before any store
// call.
func (s *ContractService) Save(ctx context.Context, employeeID, contractID string, input ports.ContractInput) (*domain.Contract, error) {
	if err := ValidateContract(input); err != nil {
		return nil, err
	}

	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contract := contractFromInput(employeeID, input)
	contract.UpdatedAt = now

	if contractID == "" {
		contract.CreatedAt = now
		created, err := s.repo.Create(ctx, contract)
		if err != nil {
			s.logger.Error().Err(err).Str("employee_id", employeeID).Msg("failed to create contract")
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		s.logger.Info().Str("employee_id", employeeID).Str("contract_id", created.ID).Msg("contract created")
		return created, nil
	}

	existing, err := s.repo.FindByID(ctx, employeeID, contractID)
	if err != nil {
		return nil, err
	}
	contract.ID = existing.ID
	contract.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, contract); err != nil {
		s.logger.Error().Err(err).Str("contract_id", contractID).Msg("failed to update contract")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	s.logger.Info().Str("employee_id", employeeID).Str("contract_id", contractID).Msg("contract updated")
	return contract, nil
}

// Delete removes one contract. Irreversible; the caller confirms intent
// before invoking.
func (s *ContractService) Delete(ctx context.Context, employeeID, contractID string) error {
	if _, err := s.repo.FindByID(ctx, employeeID, contractID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, employeeID, contractID); err != nil {
		s.logger.Error().Err(err).Str("contract_id", contractID).Msg("failed to delete contract")
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	s.logger.Info().Str("employee_id", employeeID).Str("contract_id", contractID).Msg("contract deleted")
	return nil
}

// ValidateContract enforces the ledger rules and returns the first violation.
// Dates are fixed-width ISO YYYY-MM-DD strings, so lexical comparison is
// chronological comparison.
func ValidateContract(input ports.ContractInput) error {
	if strings.TrimSpace(input.Type) == "" {
		return fmt.Errorf("%w: el tipo de contrato es obligatorio", domain.ErrValidation)
	}
	if !domain.ValidType(domain.ContractType(input.Type)) {
		return fmt.Errorf("%w: el tipo de contrato no es válido", domain.ErrValidation)
	}
	if input.StartDate == "" {
		return fmt.Errorf("%w: la fecha de inicio es obligatoria", domain.ErrValidation)
	}
	if input.EndDate != "" && input.StartDate > input.EndDate {
		return fmt.Errorf("%w: la fecha de fin debe ser posterior a la fecha de inicio", domain.ErrValidation)
	}
	if input.Salary != nil && *input.Salary <= 0 {
		return fmt.Errorf("%w: el salario debe ser mayor a 0", domain.ErrValidation)
	}
	return nil
}

func contractFromInput(employeeID string, input ports.ContractInput) *domain.Contract {
	status := domain.ContractStatus(input.Status)
	if status == "" {
		status = domain.ContractActive
	}
	return &domain.Contract{
		EmployeeID:  employeeID,
		Type:        domain.ContractType(input.Type),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Salary:      input.Salary,
		Status:      status,
		Description: input.Description,
	}
}
