package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// Bounds for the notification feed page size.
const (
	DefaultNotificationsLimit = 50
	MaxNotificationsLimit     = 200
)

// GetNotificationsQuery retrieves the notification feed, newest first,
// together with the current unread count.
//
// Example:
//
//	query, err := NewGetNotificationsQuery(0) // default page size
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetNotificationsQueryHandler(db)
//	feed, err := handler.Handle(ctx, query)
type GetNotificationsQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the notification feed.
// limit may be zero to use the default page size; otherwise it must be
// between 1 and MaxNotificationsLimit.
func NewGetNotificationsQuery(limit int) (GetNotificationsQuery, error) {
	query := GetNotificationsQuery{guard: guard.NewConstructorGuard()}

	if limit == 0 {
		limit = DefaultNotificationsLimit
	}
	if limit < 1 || limit > MaxNotificationsLimit {
		return GetNotificationsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxNotificationsLimit)
	}
	query.limit = limit

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Limit returns the maximum number of notifications to return.
func (q GetNotificationsQuery) Limit() int {
	return q.limit
}

// NotificationResponse represents one notification in the feed.
type NotificationResponse struct {
	ID        kernel.UUID
	Type      string
	Title     string
	Message   string
	OrderID   *kernel.UUID
	IsRead    bool
	CreatedAt time.Time
}

// GetNotificationsQueryResponse is the notification feed page plus the
// total number of unread notifications across the whole store.
type GetNotificationsQueryResponse struct {
	Notifications []NotificationResponse
	UnreadCount   int64
}
