package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// by status and age. The store is the single arbiter of per-order mutual
// exclusion; Update carries compare-and-swap semantics on status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, conditioned on
	// the order still being in expectedStatus at write time. Returns a
	// ConcurrentUpdateError when another operation changed the status in
	// between, and an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatusCreatedBefore retrieves all orders in the given status
	// whose creation timestamp is older than the cutoff. Used by the
	// automation scanner's overdue-payment rule.
	GetAllInStatusCreatedBefore(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)

	// GetAllInStatusNotUpdatedSince retrieves all orders in the given status
	// whose last update is older than the cutoff. Used by the automation
	// scanner's delayed-shipment rule.
	GetAllInStatusNotUpdatedSince(ctx context.Context, status order.Status, cutoff time.Time) ([]*order.Order, error)
}
