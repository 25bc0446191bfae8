package ports

import (
	"context"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// ReportService derives KPI snapshots from the record corpus.
type ReportService interface {
	// Build fetches the full employee list, then each employee's contracts in
	// sequence, and aggregates the result. One store failure fails the build.
	Build(ctx context.Context) (*domain.KPISnapshot, error)
}
