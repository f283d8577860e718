// Package order implements the Order aggregate and its lifecycle state machine.
//
// The package contains:
//   - Order: the aggregate root holding customer details, the monetary total,
//     the current status, and the creation/update timestamps
//   - Status: a closed enumeration of the eight lifecycle states with a
//     static transition table defining the legal edges between them
//   - GenerateOrderNumber: the human-readable order reference generator
//
// The transition table is the single source of truth for legal status
// changes. Both the transition engine and any surface that renders allowed
// next actions consult it through Status.AllowedTransitions and
// Status.CanTransitionTo; it has no side effects and is safe for
// unsynchronized concurrent reads.
package order
