// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// ReservationCreatedEvent is published when a reservation is successfully
// created. It carries enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary store.
type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	RequesterID   string `json:"requester_id"`
	Start         string `json:"start"`
	End           string `json:"end"`
	OccurredAt    string `json:"occurred_at"`
}

// ReservationCancelledEvent is published when an active reservation is
// cancelled, freeing its time slot.
type ReservationCancelledEvent struct {
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	RequesterID   string `json:"requester_id"`
	Start         string `json:"start"`
	End           string `json:"end"`
	OccurredAt    string `json:"occurred_at"`
}

// NewReservationCreatedEvent builds the created event from a reservation.
func NewReservationCreatedEvent(r *model.Reservation) ReservationCreatedEvent {
	return ReservationCreatedEvent{
		ReservationID: r.ID,
		RoomID:        r.RoomID,
		RequesterID:   r.RequesterID,
		Start:         r.Start.UTC().Format(time.RFC3339),
		End:           r.End.UTC().Format(time.RFC3339),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// NewReservationCancelledEvent builds the cancelled event from a reservation.
func NewReservationCancelledEvent(r *model.Reservation) ReservationCancelledEvent {
	return ReservationCancelledEvent{
		ReservationID: r.ID,
		RoomID:        r.RoomID,
		RequesterID:   r.RequesterID,
		Start:         r.Start.UTC().Format(time.RFC3339),
		End:           r.End.UTC().Format(time.RFC3339),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
