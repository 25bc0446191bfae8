package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/export"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

const (
	pdfContentType   = "application/pdf"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportService builds downloadable roster and ledger artifacts. It reads
// through the record services so exports always reflect the live corpus.
type ExportService struct {
	employees   ports.EmployeeService
	contracts   ports.ContractService
	documents   ports.DocumentGenerator
	spreadsheet ports.SpreadsheetGenerator
	logger      zerolog.Logger
	now         func() time.Time
}

func NewExportService(
	employees ports.EmployeeService,
	contracts ports.ContractService,
	documents ports.DocumentGenerator,
	spreadsheet ports.SpreadsheetGenerator,
	logger zerolog.Logger,
) *ExportService {
	return &ExportService{
		employees:   employees,
		contracts:   contracts,
		documents:   documents,
		spreadsheet: spreadsheet,
		logger:      logger,
		now:         time.Now,
	}
}

// Employees exports the roster, narrowed by searchTerm when non-empty, so the
// download matches exactly what a filtered roster view shows.
func (s *ExportService) Employees(ctx context.Context, format, searchTerm string) (*ports.ExportArtifact, error) {
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	table := export.EmployeeTable("Reporte de Empleados", Filter(roster, searchTerm))
	return s.render(table, format, "Reporte_Empleados")
}

// Contracts exports one employee's contract ledger.
func (s *ExportService) Contracts(ctx context.Context, employeeID, format string) (*ports.ExportArtifact, error) {
	if err := validateFormat(format); err != nil {
		return nil, err
	}

	contracts, err := s.contracts.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	table := export.ContractTable("Reporte de Contratos", contracts)
	return s.render(table, format, "Reporte_Contratos")
}

func (s *ExportService) render(table export.Table, format, prefix string) (*ports.ExportArtifact, error) {
	now := s.now().UTC()

	var (
		content     []byte
		contentType string
		err         error
	)
	switch format {
	case ports.FormatPDF:
		content, err = s.documents.Generate(table, now)
		contentType = pdfContentType
	case ports.FormatExcel:
		content, err = s.spreadsheet.Generate(table, table.Title)
		contentType = excelContentType
	}
	if err != nil {
		s.logger.Error().Err(err).Str("format", format).Msg("failed to generate export artifact")
		return nil, fmt.Errorf("generating %s export: %w", format, err)
	}

	return &ports.ExportArtifact{
		Filename:    export.Filename(prefix, format, now),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func validateFormat(format string) error {
	switch format {
	case ports.FormatPDF, ports.FormatExcel:
		return nil
	default:
		return fmt.Errorf("%w: formato de exportación no soportado: %q", domain.ErrValidation, format)
	}
}
