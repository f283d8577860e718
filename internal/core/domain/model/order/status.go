package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
// It implements a finite state machine with a static transition table
// that is the single source of truth for which status changes are legal.
//
// State transitions:
//
//	AWAITING_PAYMENT ──> PREPARATION ──> SHIPPED ──> DELIVERED ──> COMPLETED
//	       │                  │ │           │  │          │  │
//	       │                  │ └─────> RETURNED <────────┘  │
//	       │                  │             │                │
//	       └──> CANCELLED <───┘             └──> DISPUTED <──┘
//
// COMPLETED, RETURNED, DISPUTED and CANCELLED are terminal: they have no
// outgoing transitions.
//
// Status is a value object. Its zero value (Unknown) is invalid and fails
// every transition check, so unrecognized statuses fail closed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// AwaitingPayment is the initial status of every new order.
	AwaitingPayment

	// Preparation indicates payment was received and the order is being prepared.
	Preparation

	// Shipped indicates the order has been handed to the carrier.
	Shipped

	// Delivered indicates the carrier confirmed delivery to the customer.
	Delivered

	// Completed indicates the order finished successfully. Terminal.
	Completed

	// Returned indicates the customer sent the order back. Terminal.
	Returned

	// Disputed indicates the order is under dispute. Terminal.
	Disputed

	// Cancelled indicates the order was cancelled before fulfillment. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names for all Status values.
// These names are what gets persisted, logged, and exposed over the API.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		AwaitingPayment: "AWAITING_PAYMENT",
		Preparation:     "PREPARATION",
		Shipped:         "SHIPPED",
		Delivered:       "DELIVERED",
		Completed:       "COMPLETED",
		Returned:        "RETURNED",
		Disputed:        "DISPUTED",
		Cancelled:       "CANCELLED",
	}
}

// getStatusLabels returns human-readable display labels for all valid statuses.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingPayment: "Awaiting Payment",
		Preparation:     "Preparation",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Completed:       "Completed",
		Returned:        "Returned",
		Disputed:        "Disputed",
		Cancelled:       "Cancelled",
	}
}

// getTransitionTable returns the static mapping from each status to the set
// of statuses directly reachable from it. Terminal statuses map to an empty
// set. The table is never mutated at runtime.
func getTransitionTable() map[Status][]Status {
	//nolint:exhaustive // Unknown has no entry, so lookups on it fail closed
	return map[Status][]Status{
		AwaitingPayment: {Preparation, Cancelled},
		Preparation:     {Shipped, Cancelled, Returned},
		Shipped:         {Delivered, Returned, Disputed},
		Delivered:       {Completed, Returned, Disputed},
		Completed:       {},
		Returned:        {},
		Disputed:        {},
		Cancelled:       {},
	}
}

// AllStatuses returns every valid status in lifecycle order.
// Used for rendering the full set of recognized states.
func AllStatuses() []Status {
	return []Status{
		AwaitingPayment,
		Preparation,
		Shipped,
		Delivered,
		Completed,
		Returned,
		Disputed,
		Cancelled,
	}
}

// StatusFromString parses a wire name (e.g. "AWAITING_PAYMENT") into a Status.
// Returns a ValueIsInvalidError listing the valid names for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status, valid statuses are: %v", s, statusNames(AllStatuses())),
	)
}

// Validate checks if the Status value is a member of the enumerated state set.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, e.g. "AWAITING_PAYMENT".
// Returns "UNKNOWN" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Label returns the human-readable display name of the status,
// e.g. "Awaiting Payment". Returns the wire name for invalid values.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

// AllowedTransitions returns the set of statuses directly reachable from s.
// The result is empty for terminal and unknown statuses. The returned slice
// is a fresh copy on every call; mutating it does not affect the table.
func (s Status) AllowedTransitions() []Status {
	edges, ok := getTransitionTable()[s]
	if !ok {
		return []Status{}
	}
	out := make([]Status, len(edges))
	copy(out, edges)
	return out
}

// CanTransitionTo reports whether the transition s -> to is present in the
// transition table. Unknown source statuses yield false (fail closed).
func (s Status) CanTransitionTo(to Status) bool {
	for _, edge := range getTransitionTable()[s] {
		if edge == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	edges, ok := getTransitionTable()[s]
	return ok && len(edges) == 0
}

// TransitionTo validates the edge s -> to against the transition table and
// returns the new status. On a rejected edge it returns a
// TransitionNotAllowedError carrying the rejected edge and the full allowed
// set, so the caller can present only valid choices.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewTransitionNotAllowedError(
			s.String(), to.String(), statusNames(s.AllowedTransitions()))
	}
	return to, nil
}

func statusNames(statuses []Status) []string {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, status.String())
	}
	return names
}
