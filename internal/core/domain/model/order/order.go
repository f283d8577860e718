package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a marketplace order. It is the aggregate root that manages
// the order lifecycle from creation through fulfillment to a terminal state.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Customer name and email are required
//   - Total amount must be a finite number
//   - Status is always a member of the enumerated state set
//   - Status changes only through ChangeStatus, which consults the
//     transition table
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders are never deleted by the engine; terminal statuses end the
// lifecycle without removing the record.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable unique reference, e.g. "ORD-ABC123-XY7Q"
	orderNumber string

	// customerName and customerEmail identify the buyer
	customerName  string
	customerEmail string

	// totalAmount is the monetary total of the order.
	// Zero and negative amounts are accepted; see the validation notes in DESIGN.md.
	totalAmount float64

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at creation; updatedAt is bumped on every
	// accepted status change
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in the AwaitingPayment status with both
// timestamps set to the current time. This is the only way to create a
// fresh order, ensuring all business invariants hold.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - orderNumber: human-readable unique reference (must be non-empty)
//   - customerName, customerEmail: required customer details
//   - totalAmount: monetary total (must be finite)
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	customerEmail string,
	totalAmount float64,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        AwaitingPayment,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerName(customerName),
		order.setCustomerEmail(customerEmail),
		order.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and timestamps. Used only by repository implementations; it applies the
// same field validation as NewOrder plus status membership.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	customerEmail string,
	totalAmount float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerName(customerName),
		order.setCustomerEmail(customerEmail),
		order.setTotalAmount(totalAmount),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable unique order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the buyer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the buyer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// TotalAmount returns the monetary total of the order.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last accepted status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to newStatus if the edge is present in the
// transition table, bumping the update timestamp.
//
// Returns:
//   - nil on an accepted transition
//   - ValueIsInvalidError if newStatus is not a recognized state
//   - TransitionNotAllowedError (with the rejected edge and the allowed
//     next set) if the edge is not in the table
//
// A rejected transition leaves the order completely unchanged.
func (o *Order) ChangeStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setCustomerEmail(customerEmail string) error {
	if strings.TrimSpace(customerEmail) == "" {
		return errs.NewValueIsRequiredError("customerEmail")
	}
	o.customerEmail = customerEmail
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if math.IsNaN(totalAmount) || math.IsInf(totalAmount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%v is not a finite amount", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
