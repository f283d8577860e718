package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// GetOrderTimelineQuery retrieves the full transition history of one order,
// oldest entry first.
//
// Example:
//
//	query, err := NewGetOrderTimelineQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderTimelineQueryHandler(db)
//	timeline, err := handler.Handle(ctx, query)
type GetOrderTimelineQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderTimelineQuery creates a query for an order's audit timeline.
// Validates that the order ID is a valid UUID.
func NewGetOrderTimelineQuery(orderID kernel.UUID) (GetOrderTimelineQuery, error) {
	query := GetOrderTimelineQuery{guard: guard.NewConstructorGuard()}

	if err := orderID.Validate(); err != nil {
		return GetOrderTimelineQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTimelineQueryIsNotConstructed if validation fails.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose timeline is requested.
func (q GetOrderTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTimelineQueryResponse represents one step in an order's
// transition history.
type GetOrderTimelineQueryResponse struct {
	ID        kernel.UUID
	OldStatus string
	NewStatus string
	ChangedBy string
	Reason    string
	CreatedAt time.Time
}
