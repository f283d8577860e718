package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes aggregate order figures straight
// in the database.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the dashboard query: total order count, per-status
// breakdown, and revenue over delivered and completed orders.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	statusCounts := make(map[string]int64, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		statusCounts[status.String()] = 0
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	var total int64
	for rows.Next() {
		var status int
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}

		orderStatus := order.Status(status)
		if statusErr := orderStatus.Validate(); statusErr != nil {
			return GetDashboardStatsQueryResponse{}, statusErr
		}

		statusCounts[orderStatus.String()] = count
		total += count
	}

	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var revenue float64
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status IN (?, ?)
	`, int(order.Delivered), int(order.Completed)).Scan(&revenue).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return GetDashboardStatsQueryResponse{
		TotalOrders:  total,
		TotalRevenue: revenue,
		StatusCounts: statusCounts,
	}, nil
}
