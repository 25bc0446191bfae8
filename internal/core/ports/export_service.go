package ports

import (
	"context"
	"time"

	"github.com/sirh-molino/hr-api/internal/core/export"
)

// Export formats accepted by the export endpoints.
const (
	FormatPDF   = "pdf"
	FormatExcel = "xlsx"
)

// DocumentGenerator renders a table as a printable document (PDF).
type DocumentGenerator interface {
	Generate(table export.Table, generatedAt time.Time) ([]byte, error)
}

// SpreadsheetGenerator renders a table as a spreadsheet workbook.
type SpreadsheetGenerator interface {
	Generate(table export.Table, sheetName string) ([]byte, error)
}

// ExportArtifact is a finished download: bytes plus the metadata the HTTP
// layer needs to serve it.
type ExportArtifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService builds downloadable artifacts from the current record corpus.
type ExportService interface {
	// Employees exports the roster, narrowed by searchTerm when non-empty.
	Employees(ctx context.Context, format, searchTerm string) (*ExportArtifact, error)
	// Contracts exports one employee's contract ledger.
	Contracts(ctx context.Context, employeeID, format string) (*ExportArtifact, error)
}
