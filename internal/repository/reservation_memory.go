package repository

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// InMemoryReservationRepo keeps all reservations in a single map
// guarded by one read-write lock.  Reads take the shared lock and
// return value copies; writes take the exclusive lock for the whole
// map mutation.  Suitable for tests and ephemeral deployments.
type InMemoryReservationRepo struct {
	mu           sync.RWMutex
	reservations map[string]model.Reservation
}

// NewInMemoryReservationRepo returns an empty in-memory repository.
func NewInMemoryReservationRepo() *InMemoryReservationRepo {
	return &InMemoryReservationRepo{reservations: make(map[string]model.Reservation)}
}

func (r *InMemoryReservationRepo) Save(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reservations[res.ID] = *res
	return nil
}

func (r *InMemoryReservationRepo) Get(_ context.Context, id string) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *InMemoryReservationRepo) List(_ context.Context) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		out = append(out, res)
	}
	return out, nil
}

func (r *InMemoryReservationRepo) ListByRoom(_ context.Context, roomID string) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Reservation
	for _, res := range r.reservations {
		if res.RoomID == roomID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *InMemoryReservationRepo) ListByRequester(_ context.Context, requesterID string) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Reservation
	for _, res := range r.reservations {
		if res.RequesterID == requesterID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *InMemoryReservationRepo) ListByRoomAndRange(_ context.Context, roomID string, start, end time.Time) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Reservation
	for _, res := range r.reservations {
		if intersectsRange(&res, roomID, start, end) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *InMemoryReservationRepo) Update(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[res.ID]; !ok {
		return ErrNotFound
	}
	r.reservations[res.ID] = *res
	return nil
}

func (r *InMemoryReservationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(r.reservations, id)
	return nil
}
