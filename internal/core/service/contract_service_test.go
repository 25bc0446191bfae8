package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

func floatPtr(v float64) *float64 { return &v }

func validContractInput() ports.ContractInput {
	return ports.ContractInput{
		Type:      string(domain.ContractIndefinite),
		StartDate: "2024-01-15",
		EndDate:   "2024-12-31",
		Salary:    floatPtr(2500000),
	}
}

func contractFixture(t *testing.T) (*ContractService, *stubContractRepo, *domain.Employee) {
	t.Helper()
	employees := newStubEmployeeRepo()
	contracts := newStubContractRepo()
	employeeSvc := NewEmployeeService(employees, contracts, discardLogger)
	e := seedEmployee(t, employeeSvc, "123456")
	return NewContractService(contracts, employees, discardLogger), contracts, e
}

// ---------------------------------------------------------------------------
// Validation tests
// ---------------------------------------------------------------------------

func TestValidateContract_Accepts(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.ContractInput)
	}{
		{"full input", func(in *ports.ContractInput) {}},
		{"no end date", func(in *ports.ContractInput) { in.EndDate = "" }},
		{"no salary", func(in *ports.ContractInput) { in.Salary = nil }},
		{"same start and end", func(in *ports.ContractInput) { in.EndDate = in.StartDate }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validContractInput()
			tc.mutate(&input)
			if err := ValidateContract(input); err != nil {
				t.Errorf("expected valid, got %v", err)
			}
		})
	}
}

func TestValidateContract_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ports.ContractInput)
		message string
	}{
		{"missing type", func(in *ports.ContractInput) { in.Type = "" }, "el tipo de contrato es obligatorio"},
		{"unknown type", func(in *ports.ContractInput) { in.Type = "Eventual" }, "el tipo de contrato no es válido"},
		{"missing start", func(in *ports.ContractInput) { in.StartDate = "" }, "la fecha de inicio es obligatoria"},
		{"end before start", func(in *ports.ContractInput) {
			in.StartDate = "2024-06-01"
			in.EndDate = "2024-01-01"
		}, "la fecha de fin debe ser posterior a la fecha de inicio"},
		{"zero salary", func(in *ports.ContractInput) { in.Salary = floatPtr(0) }, "el salario debe ser mayor a 0"},
		{"negative salary", func(in *ports.ContractInput) { in.Salary = floatPtr(-1000) }, "el salario debe ser mayor a 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validContractInput()
			tc.mutate(&input)

			err := ValidateContract(input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("expected message %q in %q", tc.message, err.Error())
			}
		})
	}
}

func TestValidateContract_FirstViolationWins(t *testing.T) {
	input := ports.ContractInput{Type: "", StartDate: "", Salary: floatPtr(-1)}

	err := ValidateContract(input)
	if err == nil || !strings.Contains(err.Error(), "el tipo de contrato es obligatorio") {
		t.Fatalf("expected the type violation first, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Save tests
// ---------------------------------------------------------------------------

func TestContractService_Save_Insert(t *testing.T) {
	svc, repo, e := contractFixture(t)

	ct, err := svc.Save(context.Background(), e.ID, "", validContractInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ct.ID == "" {
		t.Error("expected generated contract id")
	}
	if ct.Status != domain.ContractActive {
		t.Errorf("expected default status %q, got %q", domain.ContractActive, ct.Status)
	}
	if ct.CreatedAt.IsZero() || ct.UpdatedAt.IsZero() {
		t.Error("timestamps must be set on insert")
	}
	if len(repo.byEmployee[e.ID]) != 1 {
		t.Errorf("expected 1 stored contract, got %d", len(repo.byEmployee[e.ID]))
	}
}

func TestContractService_Save_Update(t *testing.T) {
	svc, _, e := contractFixture(t)

	created, err := svc.Save(context.Background(), e.ID, "", validContractInput())
	if err != nil {
		t.Fatalf("seed contract: %v", err)
	}

	input := validContractInput()
	input.Status = string(domain.ContractFinished)
	updated, err := svc.Save(context.Background(), e.ID, created.ID, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("update must keep the id, got %q", updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update must preserve CreatedAt")
	}
	if updated.Status != domain.ContractFinished {
		t.Errorf("expected status %q, got %q", domain.ContractFinished, updated.Status)
	}
}

func TestContractService_Save_InvalidInputDoesNotWrite(t *testing.T) {
	svc, repo, e := contractFixture(t)

	input := validContractInput()
	input.Salary = floatPtr(0)
	_, err := svc.Save(context.Background(), e.ID, "", input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.byEmployee[e.ID]) != 0 {
		t.Error("invalid input must not reach the store")
	}
}

func TestContractService_Save_EmployeeNotFound(t *testing.T) {
	svc, _, _ := contractFixture(t)

	_, err := svc.Save(context.Background(), "missing", "", validContractInput())
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestContractService_Save_ContractNotFound(t *testing.T) {
	svc, _, e := contractFixture(t)

	_, err := svc.Save(context.Background(), e.ID, "missing", validContractInput())
	if !errors.Is(err, domain.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List / Delete tests
// ---------------------------------------------------------------------------

func TestContractService_ListForEmployee_EmployeeNotFound(t *testing.T) {
	svc, _, _ := contractFixture(t)

	_, err := svc.ListForEmployee(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestContractService_Delete(t *testing.T) {
	svc, repo, e := contractFixture(t)
	created, err := svc.Save(context.Background(), e.ID, "", validContractInput())
	if err != nil {
		t.Fatalf("seed contract: %v", err)
	}

	if err := svc.Delete(context.Background(), e.ID, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.byEmployee[e.ID]) != 0 {
		t.Error("contract must be removed")
	}

	if err := svc.Delete(context.Background(), e.ID, created.ID); !errors.Is(err, domain.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound on second delete, got %v", err)
	}
}
