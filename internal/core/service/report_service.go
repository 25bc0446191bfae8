package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// ReportService derives KPI snapshots from the full record corpus.
type ReportService struct {
	employees ports.EmployeeRepository
	contracts ports.ContractRepository
	logger    zerolog.Logger
}

func NewReportService(employees ports.EmployeeRepository, contracts ports.ContractRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{employees: employees, contracts: contracts, logger: logger}
}

// Build fetches the full employee list and each employee's contracts in
// sequence, then aggregates. The fetch is O(employees) store round-trips,
// acceptable at the expected roster sizes (hundreds, not millions).
func (s *ReportService) Build(ctx context.Context) (*domain.KPISnapshot, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("report: failed to list employees")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	var contracts []*domain.Contract
	for _, e := range employees {
		list, err := s.contracts.ListByEmployee(ctx, e.ID)
		if err != nil {
			s.logger.Error().Err(err).Str("employee_id", e.ID).Msg("report: failed to list contracts")
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		contracts = append(contracts, list...)
	}

	return Aggregate(employees, contracts), nil
}

// Aggregate computes the KPI snapshot from an already-fetched corpus. Pure
// function: no store access, tolerates an empty corpus, never divides by zero.
func Aggregate(employees []*domain.Employee, contracts []*domain.Contract) *domain.KPISnapshot {
	snapshot := &domain.KPISnapshot{
		TotalEmployees: len(employees),
		TotalContracts: len(contracts),
		ByPosition:     make(map[string]int),
	}

	for _, e := range employees {
		if e.Status.IsActive() {
			snapshot.ActiveEmployees++
		}
		position := e.Position
		if position == "" {
			position = domain.NoPosition
		}
		snapshot.ByPosition[position]++
	}

	for _, c := range contracts {
		if c.Status.IsActive() {
			snapshot.ActiveContracts++
		}
	}

	snapshot.ByStatus = domain.StatusBreakdown{
		Active:  snapshot.ActiveEmployees,
		Retired: snapshot.TotalEmployees - snapshot.ActiveEmployees,
	}

	if snapshot.TotalEmployees > 0 {
		snapshot.ActiveEmployeeRate = percentage(snapshot.ActiveEmployees, snapshot.TotalEmployees)
		snapshot.ContractsPerEmployee = roundTo2(float64(snapshot.TotalContracts) / float64(snapshot.TotalEmployees))
	}
	if snapshot.TotalContracts > 0 {
		snapshot.ActiveContractRate = percentage(snapshot.ActiveContracts, snapshot.TotalContracts)
	}

	return snapshot
}

// percentage returns part/whole as a rounded whole percentage.
func percentage(part, whole int) float64 {
	return math.Round(float64(part) / float64(whole) * 100)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
