package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

type stubExportService struct {
	employeesFn func(ctx context.Context, format, searchTerm string) (*ports.ExportArtifact, error)
	contractsFn func(ctx context.Context, employeeID, format string) (*ports.ExportArtifact, error)
}

func (s *stubExportService) Employees(ctx context.Context, format, searchTerm string) (*ports.ExportArtifact, error) {
	return s.employeesFn(ctx, format, searchTerm)
}

func (s *stubExportService) Contracts(ctx context.Context, employeeID, format string) (*ports.ExportArtifact, error) {
	return s.contractsFn(ctx, employeeID, format)
}

func TestExportHandler_Employees_ServesAttachment(t *testing.T) {
	e := echo.New()
	stub := &stubExportService{
		employeesFn: func(_ context.Context, format, searchTerm string) (*ports.ExportArtifact, error) {
			if format != "pdf" || searchTerm != "ana" {
				t.Fatalf("unexpected args: %s %s", format, searchTerm)
			}
			return &ports.ExportArtifact{
				Filename:    "Reporte_Empleados_2026-08-30.pdf",
				ContentType: "application/pdf",
				Content:     []byte("%PDF"),
			}, nil
		},
	}
	handler := NewExportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/employees?format=pdf&q=ana", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Employees(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(disposition, "Reporte_Empleados_2026-08-30.pdf") {
		t.Errorf("unexpected content disposition %q", disposition)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "application/pdf" {
		t.Errorf("unexpected content type %q", got)
	}
	if rec.Body.String() != "%PDF" {
		t.Errorf("artifact bytes must pass through unchanged")
	}
}

func TestExportHandler_Employees_UnsupportedFormat(t *testing.T) {
	e := echo.New()
	stub := &stubExportService{
		employeesFn: func(context.Context, string, string) (*ports.ExportArtifact, error) {
			return nil, fmt.Errorf("%w: formato de exportación no soportado", domain.ErrValidation)
		},
	}
	handler := NewExportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/employees?format=csv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Employees(c)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestExportHandler_Contracts_EmployeeNotFound(t *testing.T) {
	e := echo.New()
	stub := &stubExportService{
		contractsFn: func(context.Context, string, string) (*ports.ExportArtifact, error) {
			return nil, domain.ErrEmployeeNotFound
		},
	}
	handler := NewExportHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/employees/missing/contracts?format=pdf", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	_ = handler.Contracts(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
