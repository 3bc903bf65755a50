// Package model defines the domain entities of the reservation
// service: reservations, rooms and users.  Entities validate their own
// field invariants at construction time; cross-entity rules (room
// exists and is active, requester exists, no overlapping booking) live
// in the service layer.
package model

import "strings"

// ValidationError aggregates every rule a caller violated in one
// request.  Handlers translate it into an HTTP 400 response and return
// the message list verbatim, so a client can fix all fields in a
// single round trip instead of discovering them one by one.
type ValidationError struct {
	Messages []string
}

// Error joins all messages into a single human-readable string.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from one or more
// messages.  Used by the service layer for business-rule violations
// that involve more than a single entity.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}
