package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves aggregate order figures for the admin
// dashboard. This is a parameterless query.
//
// Example:
//
//	query := NewGetDashboardStatsQuery()
//	handler := NewGetDashboardStatsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load dashboard: %w", err)
//	}
//	fmt.Printf("%d orders, $%.2f completed revenue\n", stats.TotalOrders, stats.TotalRevenue)
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for dashboard statistics.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardStatsQueryIsNotConstructed if validation fails.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse carries the dashboard figures. StatusCounts
// has one entry per status wire name, zero-valued for statuses with no
// orders. Revenue counts delivered and completed orders only.
type GetDashboardStatsQueryResponse struct {
	TotalOrders  int64
	TotalRevenue float64
	StatusCounts map[string]int64
}
