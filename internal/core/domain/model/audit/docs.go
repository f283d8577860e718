// Package audit implements the append-only audit trail of order status
// transitions. Every accepted transition, including order creation, produces
// exactly one immutable Entry; the entries for an order read in creation
// order reconstruct its full lifecycle timeline.
package audit
