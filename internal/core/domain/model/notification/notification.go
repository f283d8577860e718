package notification

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Type classifies a notification. The zero value (TypeUnknown) is invalid.
type Type int

const (
	// TypeUnknown represents an invalid or undefined notification type.
	TypeUnknown Type = iota

	// TypePaymentOverdue is raised by the automation scanner when an order
	// has been awaiting payment for too long.
	TypePaymentOverdue

	// TypeShipmentDelayed is raised by the automation scanner when an order
	// has been in shipping for too long.
	TypeShipmentDelayed

	// TypeStatusChange is raised on every accepted status transition.
	TypeStatusChange

	// TypeSystemAlert is a general operational alert.
	TypeSystemAlert

	// TypeNewOrder is raised when an order is created.
	TypeNewOrder
)

// getTypeStrings returns the wire names for all Type values.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:         "UNKNOWN",
		TypePaymentOverdue:  "PAYMENT_OVERDUE",
		TypeShipmentDelayed: "SHIPMENT_DELAYED",
		TypeStatusChange:    "STATUS_CHANGE",
		TypeSystemAlert:     "SYSTEM_ALERT",
		TypeNewOrder:        "NEW_ORDER",
	}
}

// TypeFromString parses a wire name (e.g. "PAYMENT_OVERDUE") into a Type.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != TypeUnknown && name == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notificationType", fmt.Errorf("%q is not a valid notification type", s))
}

// Validate checks if the Type value is a member of the enumerated set.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"notificationType", fmt.Errorf("%d is not a valid notification type", t))
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notificationType", fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// String returns the wire name of the type, e.g. "PAYMENT_OVERDUE".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Notification is a persisted, typed alert, optionally tied to an order.
// Notifications are created unread by the transition engine (on creation and
// on every accepted transition) and by the automation scanner (on detecting
// a stuck order). The only permitted mutation is flipping the read flag.
type Notification struct {
	id        kernel.UUID
	kind      Type
	title     string
	message   string
	orderID   *kernel.UUID
	isRead    bool
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification stamped with the current
// time. orderID is optional; pass nil for alerts not tied to an order.
func NewNotification(
	id kernel.UUID,
	kind Type,
	title string,
	message string,
	orderID *kernel.UUID,
) (*Notification, error) {
	return newNotification(id, kind, title, message, orderID, false, time.Now().UTC())
}

// RestoreNotification reconstructs a notification from persistence with its
// stored read flag and creation timestamp. Used only by repository
// implementations.
func RestoreNotification(
	id kernel.UUID,
	kind Type,
	title string,
	message string,
	orderID *kernel.UUID,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	return newNotification(id, kind, title, message, orderID, isRead, createdAt)
}

func newNotification(
	id kernel.UUID,
	kind Type,
	title string,
	message string,
	orderID *kernel.UUID,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Notification{
		id:            id,
		kind:          kind,
		title:         title,
		message:       message,
		orderID:       orderID,
		isRead:        isRead,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the notification was created through a factory function.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Type returns the notification's type.
func (n *Notification) Type() Type {
	return n.kind
}

// Title returns the short headline of the notification.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// OrderID returns the owning order's identifier, or nil when the
// notification is not tied to an order.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

// IsRead reports whether the notification has been read.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the notification to read. Marking an already-read
// notification is a no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}
