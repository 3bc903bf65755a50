package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus enumerates the lifecycle states of a reservation.
// ACTIVE is the only state that blocks a room; CANCELLED and
// COMPLETED are terminal and no transition leaves them.
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "ACTIVE"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

// Duration bounds enforced at construction time.  A booking shorter
// than MinReservationDuration or longer than MaxReservationDuration
// is rejected.
const (
	MinReservationDuration = 15 * time.Minute
	MaxReservationDuration = 8 * time.Hour
)

// Reservation is the booking of one room for one time interval by one
// requester.  The interval is half-open: [Start, End).  All times are
// UTC instants.  The struct is serialized as-is by the file-backed
// repository, hence the json tags.
//
// Fields:
//  ID          – opaque unique identifier, generated on creation.
//  RoomID      – room being reserved (existence checked by the service).
//  RequesterID – user who requested the booking.
//  Start       – start of the interval (inclusive).
//  End         – end of the interval (exclusive).
//  Status      – ACTIVE, CANCELLED or COMPLETED.
//  CreatedAt   – construction timestamp, immutable.
type Reservation struct {
	ID          string            `json:"id"`
	RoomID      string            `json:"room_id"`
	RequesterID string            `json:"requester_id"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

// NewReservation validates the given fields and returns a new ACTIVE
// reservation.  Every violated rule is collected so the caller can fix
// all fields in one round trip; the returned error is a
// *ValidationError carrying the full message list.
func NewReservation(roomID, requesterID string, start, end time.Time) (*Reservation, error) {
	var msgs []string

	if roomID == "" {
		msgs = append(msgs, "room id must not be empty")
	}
	if requesterID == "" {
		msgs = append(msgs, "requester id must not be empty")
	}

	now := time.Now().UTC()
	start = start.UTC()
	end = end.UTC()

	if start.Before(now) {
		msgs = append(msgs, "start time cannot be in the past")
	}
	if end.Before(now) {
		msgs = append(msgs, "end time cannot be in the past")
	}
	if !end.After(start) {
		msgs = append(msgs, "end time must be after start time")
	}

	if d := end.Sub(start); d < MinReservationDuration || d > MaxReservationDuration {
		msgs = append(msgs, "reservation duration must be between 15 minutes and 8 hours")
	}

	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	return &Reservation{
		ID:          uuid.NewString(),
		RoomID:      roomID,
		RequesterID: requesterID,
		Start:       start,
		End:         end,
		Status:      ReservationActive,
		CreatedAt:   now,
	}, nil
}

// RestoreReservation rebuilds a reservation from already persisted
// fields.  It performs no validation; it exists for repositories
// loading stored state and for transient availability candidates whose
// interval may lie in the past.
func RestoreReservation(id, roomID, requesterID string, start, end time.Time, status ReservationStatus, createdAt time.Time) *Reservation {
	return &Reservation{
		ID:          id,
		RoomID:      roomID,
		RequesterID: requesterID,
		Start:       start.UTC(),
		End:         end.UTC(),
		Status:      status,
		CreatedAt:   createdAt.UTC(),
	}
}

// IsActive reports whether the reservation still blocks its room.
func (r *Reservation) IsActive() bool { return r.Status == ReservationActive }

// Cancel moves the reservation to the CANCELLED terminal state.  The
// service guards against calling this on a non-active reservation.
func (r *Reservation) Cancel() { r.Status = ReservationCancelled }

// Complete moves the reservation to the COMPLETED terminal state.  The
// service guards against calling this on a non-active reservation.
func (r *Reservation) Complete() { r.Status = ReservationCompleted }

// Overlaps reports whether two reservations compete for the same room
// at the same time.  Reservations on different rooms never overlap,
// and only ACTIVE reservations count.  Intervals are half-open, so
// touching endpoints (a.End == b.Start) do not overlap.
func (r *Reservation) Overlaps(other *Reservation) bool {
	if r.RoomID != other.RoomID {
		return false
	}
	if !r.IsActive() || !other.IsActive() {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Duration returns the booked interval length.  Derived, not stored.
func (r *Reservation) Duration() time.Duration { return r.End.Sub(r.Start) }
