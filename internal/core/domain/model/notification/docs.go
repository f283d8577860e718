// Package notification implements persisted, typed alerts with read/unread
// state. Notifications are raised by the transition engine on order creation
// and on every accepted status change, and by the automation scanner when it
// detects an order stuck in a state past its threshold.
package notification
