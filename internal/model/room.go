package model

import (
	"strings"

	"github.com/google/uuid"
)

// Limits applied to room fields at construction time.
const (
	RoomNameMaxLength = 100
	RoomCapacityMin   = 1
	RoomCapacityMax   = 1000
)

// Room represents a bookable meeting room.  A room must be active to
// accept new reservations; deactivating a room does not touch its
// existing bookings.
//
// Fields:
//  ID       – opaque unique identifier, generated on creation.
//  Name     – display name, trimmed, 1..100 characters.
//  Capacity – number of seats, 1..1000.
//  Active   – whether the room currently accepts reservations.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
}

// NewRoom validates the fields and returns a new active room.  Like
// NewReservation it reports every violated rule at once via
// *ValidationError.
func NewRoom(name string, capacity int) (*Room, error) {
	name = strings.TrimSpace(name)

	var msgs []string
	if name == "" {
		msgs = append(msgs, "room name must not be empty")
	} else if len(name) > RoomNameMaxLength {
		msgs = append(msgs, "room name must be at most 100 characters")
	}
	if capacity < RoomCapacityMin || capacity > RoomCapacityMax {
		msgs = append(msgs, "room capacity must be between 1 and 1000")
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	return &Room{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: capacity,
		Active:   true,
	}, nil
}

// Activate marks the room as accepting reservations again.
func (r *Room) Activate() { r.Active = true }

// Deactivate blocks new reservations for the room.
func (r *Room) Deactivate() { r.Active = false }
