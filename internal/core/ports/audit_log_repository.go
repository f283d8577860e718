package ports

import (
	"context"

	"marketplace/internal/core/domain/model/audit"
	"marketplace/internal/core/domain/model/kernel"
)

// AuditLogRepository defines the persistence contract for the append-only
// audit trail. Entries are only ever added; there is no update or delete.
type AuditLogRepository interface {
	// Add appends an audit entry to the trail.
	Add(ctx context.Context, entry *audit.Entry) error

	// GetByOrderID retrieves all audit entries for an order in creation
	// order, oldest first, forming the order's transition timeline.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)
}
