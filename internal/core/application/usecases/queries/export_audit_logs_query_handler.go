package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExportAuditLogsQueryHandler retrieves the complete audit trail joined with
// order numbers for export.
type ExportAuditLogsQueryHandler struct {
	db *gorm.DB
}

// NewExportAuditLogsQueryHandler creates a handler for audit trail exports.
// Requires a GORM database connection for query execution.
func NewExportAuditLogsQueryHandler(db *gorm.DB) ExportAuditLogsQueryHandler {
	return ExportAuditLogsQueryHandler{db: db}
}

// Handle executes the export query, newest entry first.
func (h ExportAuditLogsQueryHandler) Handle(
	ctx context.Context,
	query ExportAuditLogsQuery,
) ([]ExportAuditLogsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.order_id,
			o.order_number,
			a.old_status,
			a.new_status,
			a.changed_by,
			a.reason,
			a.created_at
		FROM audit_logs a
		JOIN orders o ON o.id = a.order_id
		ORDER BY a.created_at DESC, a.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ExportAuditLogsQueryResponse, 0)
	for rows.Next() {
		var resp ExportAuditLogsQueryResponse
		var id uuid.UUID
		var orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.OrderNumber,
			&resp.OldStatus,
			&resp.NewStatus,
			&resp.ChangedBy,
			&resp.Reason,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID

		linkedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = linkedOrderID

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
