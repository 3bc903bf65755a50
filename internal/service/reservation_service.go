package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
	"github.com/iliyamo/meeting-room-reservation/internal/repository"
)

// ReservationService orchestrates the reservation lifecycle: entity
// validation, the room/requester lookups, the availability check and
// persistence.  Repository errors are surfaced as-is, never retried;
// durability is the repository's concern.
type ReservationService struct {
	reservations repository.ReservationRepository
	rooms        repository.RoomRepository
	users        repository.UserRepository

	// Per-room mutexes serialize the availability check and the save
	// inside CreateReservation.  Without this, two concurrent creates
	// for overlapping intervals can both pass the check before either
	// persists and the no-overlap invariant breaks.
	lockMu    sync.Mutex
	roomLocks map[string]*sync.Mutex
}

// NewReservationService wires the service to its storage ports.  The
// room and user repositories are used only as narrow read lookups.
func NewReservationService(reservations repository.ReservationRepository, rooms repository.RoomRepository, users repository.UserRepository) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		users:        users,
		roomLocks:    make(map[string]*sync.Mutex),
	}
}

// roomLock returns the mutex dedicated to one room, creating it on
// first use.  Room ids are few and long-lived, so entries are never
// evicted.
func (s *ReservationService) roomLock(roomID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	return l
}

// CreateReservation books a room for [start, end).  Checks run in a
// fixed order: room exists and is active, requester exists, field
// validation, availability.  A caller seeing a validation failure can
// therefore trust that the room and requester already check out.
func (s *ReservationService) CreateReservation(ctx context.Context, roomID, requesterID string, start, end time.Time) (*model.Reservation, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !room.Active {
		return nil, model.NewValidationError("room is not active")
	}

	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequesterNotFound
		}
		return nil, err
	}

	res, err := model.NewReservation(roomID, requesterID, start, end)
	if err != nil {
		return nil, err
	}

	// Availability check and save under one lock, scoped to the room.
	l := s.roomLock(roomID)
	l.Lock()
	defer l.Unlock()

	available, err := s.availability(ctx, roomID, res.Start, res.End)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, model.NewValidationError("room is not available in the requested time slot")
	}

	if err := s.reservations.Save(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// CheckAvailability reports whether the room is free for the whole
// half-open interval [start, end).  It never persists anything.
func (s *ReservationService) CheckAvailability(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	return s.availability(ctx, roomID, start.UTC(), end.UTC())
}

// availability fetches only the ACTIVE reservations intersecting the
// range and probes them with a throwaway candidate, so the overlap
// rule stays defined in exactly one place: model.Reservation.Overlaps.
func (s *ReservationService) availability(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	existing, err := s.reservations.ListByRoomAndRange(ctx, roomID, start, end)
	if err != nil {
		return false, err
	}
	candidate := model.RestoreReservation("candidate", roomID, "candidate", start, end, model.ReservationActive, time.Now().UTC())
	for i := range existing {
		if candidate.Overlaps(&existing[i]) {
			return false, nil
		}
	}
	return true, nil
}

// CancelReservation moves an ACTIVE reservation to CANCELLED and
// persists the transition.  Cancelling a reservation in a terminal
// state is a validation error, not a not-found: the record exists.
func (s *ReservationService) CancelReservation(ctx context.Context, id string) (*model.Reservation, error) {
	return s.transition(ctx, id, "cancelled", (*model.Reservation).Cancel)
}

// CompleteReservation moves an ACTIVE reservation to COMPLETED.
func (s *ReservationService) CompleteReservation(ctx context.Context, id string) (*model.Reservation, error) {
	return s.transition(ctx, id, "completed", (*model.Reservation).Complete)
}

func (s *ReservationService) transition(ctx context.Context, id, verb string, apply func(*model.Reservation)) (*model.Reservation, error) {
	res, err := s.reservations.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !res.IsActive() {
		return nil, model.NewValidationError("only active reservations can be " + verb)
	}
	apply(res)
	if err := s.reservations.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetReservation returns one reservation by id.
func (s *ReservationService) GetReservation(ctx context.Context, id string) (*model.Reservation, error) {
	res, err := s.reservations.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// ListReservations returns every reservation.
func (s *ReservationService) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.List(ctx)
}

// ListReservationsByRoom returns all reservations for one room.
func (s *ReservationService) ListReservationsByRoom(ctx context.Context, roomID string) ([]model.Reservation, error) {
	return s.reservations.ListByRoom(ctx, roomID)
}

// ListReservationsByRequester returns all reservations one user made.
func (s *ReservationService) ListReservationsByRequester(ctx context.Context, requesterID string) ([]model.Reservation, error) {
	return s.reservations.ListByRequester(ctx, requesterID)
}
