package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// DashboardStatsResponse is the body of GET /api/analytics/dashboard.
type DashboardStatsResponse struct {
	TotalOrders  int64            `json:"totalOrders"`
	TotalRevenue float64          `json:"totalRevenue"`
	StatusCounts map[string]int64 `json:"statusCounts"`
}

// GetDashboardStats handles GET /api/analytics/dashboard.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	query := queries.NewGetDashboardStatsQuery()

	stats, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		TotalOrders:  stats.TotalOrders,
		TotalRevenue: stats.TotalRevenue,
		StatusCounts: stats.StatusCounts,
	})
}

// ExportAuditLogs handles GET /api/audit-logs/export, streaming the full
// audit trail as a CSV attachment.
func (s *Server) ExportAuditLogs(ctx echo.Context) error {
	query := queries.NewExportAuditLogsQuery()

	entries, err := s.exportAuditLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	filename := fmt.Sprintf("audit-logs-%s.csv", time.Now().UTC().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Response().WriteHeader(http.StatusOK)

	writer := csv.NewWriter(ctx.Response())
	if err = writer.Write([]string{
		"id", "orderId", "orderNumber", "oldStatus", "newStatus", "changedBy", "reason", "createdAt",
	}); err != nil {
		return err
	}

	for _, entry := range entries {
		record := []string{
			entry.ID.String(),
			entry.OrderID.String(),
			entry.OrderNumber,
			entry.OldStatus,
			entry.NewStatus,
			entry.ChangedBy,
			entry.Reason,
			entry.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err = writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
