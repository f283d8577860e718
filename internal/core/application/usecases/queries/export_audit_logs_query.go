package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrExportAuditLogsQueryIsNotConstructed = errors.New(
	"ExportAuditLogsQuery must be created via NewExportAuditLogsQuery constructor",
)

// ExportAuditLogsQuery retrieves the complete audit trail across all orders,
// newest entry first, for export. This is a parameterless query.
type ExportAuditLogsQuery struct {
	guard guard.ConstructorGuard
}

// NewExportAuditLogsQuery creates a query for the full audit trail.
func NewExportAuditLogsQuery() ExportAuditLogsQuery {
	return ExportAuditLogsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrExportAuditLogsQueryIsNotConstructed if validation fails.
func (q ExportAuditLogsQuery) Validate() error {
	return q.guard.Validate(ErrExportAuditLogsQueryIsNotConstructed)
}

// ExportAuditLogsQueryResponse represents one audit entry joined with the
// number of the order it belongs to.
type ExportAuditLogsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	OldStatus   string
	NewStatus   string
	ChangedBy   string
	Reason      string
	CreatedAt   time.Time
}
