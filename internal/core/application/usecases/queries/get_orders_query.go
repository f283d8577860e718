// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projections straight
// from the database.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for the admin board, optionally filtered
// by a single status. The filter is parsed from its wire name, so an unknown
// status is rejected up front instead of silently matching nothing.
//
// Example:
//
//	query, err := NewGetOrdersQuery("SHIPPED")
//	if err != nil {
//	    return fmt.Errorf("bad status filter: %w", err)
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	statusFilter order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve orders. statusFilter may be
// empty to retrieve orders in every status.
func NewGetOrdersQuery(statusFilter string) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		query.statusFilter = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status to filter by, or order.Unknown when the
// query covers all statuses.
func (q GetOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// GetOrdersQueryResponse represents one order row on the admin board,
// enriched with the transitions currently allowed from its status.
type GetOrdersQueryResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	CustomerName       string
	CustomerEmail      string
	TotalAmount        float64
	Status             string
	StatusLabel        string
	AllowedTransitions []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
