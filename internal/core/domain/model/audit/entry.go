package audit

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// StatusNew is the sentinel recorded as the prior status of the creation
// transition, before an order has any real status.
const StatusNew = "NEW"

// Recognized actor conventions for the ChangedBy field. The field itself is
// free-form; these are the values the system writes on its own behalf.
const (
	ActorSystem   = "SYSTEM"
	ActorAdmin    = "ADMIN"
	ActorCustomer = "CUSTOMER"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is one immutable record in an order's audit trail. Exactly one entry
// is appended per accepted transition, including the initial creation
// transition from the NEW sentinel. Entries are never mutated or deleted;
// consumed in creation order they form the full transition history of an
// order.
type Entry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	oldStatus string
	newStatus string
	changedBy string
	reason    string
	createdAt time.Time

	isConstructed bool
}

// NewEntry creates an audit entry for a transition oldStatus -> newStatus on
// the given order, stamped with the current time. Statuses are recorded by
// their wire names; oldStatus may be the StatusNew sentinel for the creation
// transition. The reason is optional free text.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	oldStatus string,
	newStatus string,
	changedBy string,
	reason string,
) (*Entry, error) {
	return newEntry(id, orderID, oldStatus, newStatus, changedBy, reason, time.Now().UTC())
}

// RestoreEntry reconstructs an audit entry from persistence with its stored
// creation timestamp. Used only by repository implementations.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	oldStatus string,
	newStatus string,
	changedBy string,
	reason string,
	createdAt time.Time,
) (*Entry, error) {
	return newEntry(id, orderID, oldStatus, newStatus, changedBy, reason, createdAt)
}

func newEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	oldStatus string,
	newStatus string,
	changedBy string,
	reason string,
	createdAt time.Time,
) (*Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if oldStatus == "" {
		return nil, errs.NewValueIsRequiredError("oldStatus")
	}
	if newStatus == "" {
		return nil, errs.NewValueIsRequiredError("newStatus")
	}
	if changedBy == "" {
		return nil, errs.NewValueIsRequiredError("changedBy")
	}

	return &Entry{
		id:            id,
		orderID:       orderID,
		oldStatus:     oldStatus,
		newStatus:     newStatus,
		changedBy:     changedBy,
		reason:        reason,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a factory function.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order this entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// OldStatus returns the wire name of the status before the transition, or
// the StatusNew sentinel for the creation transition.
func (e *Entry) OldStatus() string {
	return e.oldStatus
}

// NewStatus returns the wire name of the status after the transition.
func (e *Entry) NewStatus() string {
	return e.newStatus
}

// ChangedBy returns the actor identifier that requested the transition.
func (e *Entry) ChangedBy() string {
	return e.changedBy
}

// Reason returns the optional free-text reason for the transition.
func (e *Entry) Reason() string {
	return e.reason
}

// CreatedAt returns the creation timestamp of the entry.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}
