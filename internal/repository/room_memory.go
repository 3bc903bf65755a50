package repository

import (
	"context"
	"sync"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// InMemoryRoomRepo is the map-and-lock room backend.  Same concurrency
// contract as InMemoryReservationRepo: shared lock plus value copies
// on reads, exclusive lock on writes.
type InMemoryRoomRepo struct {
	mu    sync.RWMutex
	rooms map[string]model.Room
}

// NewInMemoryRoomRepo returns an empty in-memory room repository.
func NewInMemoryRoomRepo() *InMemoryRoomRepo {
	return &InMemoryRoomRepo{rooms: make(map[string]model.Room)}
}

func (r *InMemoryRoomRepo) Save(_ context.Context, room *model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms[room.ID] = *room
	return nil
}

func (r *InMemoryRoomRepo) Get(_ context.Context, id string) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *InMemoryRoomRepo) List(_ context.Context) ([]model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *InMemoryRoomRepo) Update(_ context.Context, room *model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return ErrNotFound
	}
	r.rooms[room.ID] = *room
	return nil
}

func (r *InMemoryRoomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}
