package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

type roomDocument struct {
	Rooms map[string]model.Room `json:"rooms"`
}

// FileRoomRepo persists rooms the same way FileReservationRepo
// persists reservations: in-memory cache, full-file JSON rewrite on
// every mutation, single owning process.
type FileRoomRepo struct {
	path string

	mu    sync.RWMutex
	rooms map[string]model.Room
}

// NewFileRoomRepo returns a room repository backed by the JSON file at
// path.  Call Init once at process start.
func NewFileRoomRepo(path string) *FileRoomRepo {
	return &FileRoomRepo{path: path, rooms: make(map[string]model.Room)}
}

// Init loads the backing file into the cache; a missing file means
// start empty.
func (r *FileRoomRepo) Init() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read room store: %w", err)
	}
	var doc roomDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse room store: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.Rooms != nil {
		r.rooms = doc.Rooms
	}
	return nil
}

func (r *FileRoomRepo) flush() error {
	r.mu.RLock()
	doc := roomDocument{Rooms: make(map[string]model.Room, len(r.rooms))}
	for id, room := range r.rooms {
		doc.Rooms[id] = room
	}
	r.mu.RUnlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode room store: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write room store: %w", err)
	}
	return nil
}

func (r *FileRoomRepo) Save(_ context.Context, room *model.Room) error {
	r.mu.Lock()
	r.rooms[room.ID] = *room
	r.mu.Unlock()
	return r.flush()
}

func (r *FileRoomRepo) Get(_ context.Context, id string) (*model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *FileRoomRepo) List(_ context.Context) ([]model.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *FileRoomRepo) Update(_ context.Context, room *model.Room) error {
	r.mu.Lock()
	if _, ok := r.rooms[room.ID]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	r.rooms[room.ID] = *room
	r.mu.Unlock()
	return r.flush()
}

func (r *FileRoomRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.rooms[id]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.rooms, id)
	r.mu.Unlock()
	return r.flush()
}
