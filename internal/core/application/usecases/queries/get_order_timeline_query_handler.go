package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTimelineQueryHandler retrieves an order's audit trail from the
// database, oldest entry first, so consumers can render the transition
// history top to bottom.
type GetOrderTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTimelineQueryHandler creates a handler for timeline queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTimelineQueryHandler(db *gorm.DB) GetOrderTimelineQueryHandler {
	return GetOrderTimelineQueryHandler{db: db}
}

// Handle executes the timeline query.
// Returns errs.ObjectNotFoundError when the order does not exist; an
// existing order always has at least its creation entry.
func (h GetOrderTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTimelineQuery,
) ([]GetOrderTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orderCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&orderCount).Error
	if err != nil {
		return nil, err
	}
	if orderCount == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			old_status,
			new_status,
			changed_by,
			reason,
			created_at
		FROM audit_logs
		WHERE order_id = ?
		ORDER BY created_at ASC, id ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timeline := make([]GetOrderTimelineQueryResponse, 0)
	for rows.Next() {
		var resp GetOrderTimelineQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
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

		timeline = append(timeline, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return timeline, nil
}
