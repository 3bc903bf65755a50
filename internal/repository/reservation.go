package repository

import (
	"context"
	"time"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// ReservationRepository is the storage port the reservation service
// depends on.  Implementations must hand out independent copies:
// callers never observe a reservation that another caller could
// mutate concurrently, which is what makes the service's
// load-mutate-persist discipline safe.
type ReservationRepository interface {
	// Save stores a new reservation under its id.
	Save(ctx context.Context, r *model.Reservation) error
	// Get returns the reservation with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Reservation, error)
	// List returns all reservations in no particular order.
	List(ctx context.Context) ([]model.Reservation, error)
	// ListByRoom returns every reservation for the room, any status.
	ListByRoom(ctx context.Context, roomID string) ([]model.Reservation, error)
	// ListByRequester returns every reservation made by the user.
	ListByRequester(ctx context.Context, requesterID string) ([]model.Reservation, error)
	// ListByRoomAndRange returns only ACTIVE reservations for the room
	// whose interval intersects the half-open range [start, end).  This
	// is the pre-filter the availability check relies on.
	ListByRoomAndRange(ctx context.Context, roomID string, start, end time.Time) ([]model.Reservation, error)
	// Update replaces an existing reservation; ErrNotFound if absent.
	Update(ctx context.Context, r *model.Reservation) error
	// Delete removes a reservation by id; ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}

// intersectsRange reports whether an ACTIVE reservation overlaps the
// half-open range [start, end).  Shared by the map-based backends.
func intersectsRange(r *model.Reservation, roomID string, start, end time.Time) bool {
	return r.RoomID == roomID && r.IsActive() && r.Start.Before(end) && r.End.After(start)
}
