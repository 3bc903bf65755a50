package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// reservationDocument is the on-disk layout: one JSON object mapping
// reservation id to its serialized fields.  There is no schema version
// field; format changes require an out-of-band migration.
type reservationDocument struct {
	Reservations map[string]model.Reservation `json:"reservations"`
}

// FileReservationRepo adds crash-durability on top of the in-memory
// map: the map acts as a cache and every mutation rewrites the whole
// backing file.  The exclusive lock covers only the cache mutation and
// is released before the disk write, so two concurrent writers can
// interleave their file writes (last write wins).  The repository
// assumes a single owning process; it is not safe for multiple
// processes sharing one file.
type FileReservationRepo struct {
	path string

	mu           sync.RWMutex
	reservations map[string]model.Reservation
}

// NewFileReservationRepo returns a repository backed by the JSON file
// at path.  Call Init once at process start to load pre-existing data.
func NewFileReservationRepo(path string) *FileReservationRepo {
	return &FileReservationRepo{
		path:         path,
		reservations: make(map[string]model.Reservation),
	}
}

// Init populates the cache from the backing file.  A missing file is
// not an error; it means start empty.
func (r *FileReservationRepo) Init() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read reservation store: %w", err)
	}
	var doc reservationDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse reservation store: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.Reservations != nil {
		r.reservations = doc.Reservations
	}
	return nil
}

// flush serializes the entire cache and overwrites the backing file.
// A full rewrite per mutation is a deliberate simplicity trade-off for
// the target scale of hundreds to low thousands of reservations.
func (r *FileReservationRepo) flush() error {
	r.mu.RLock()
	doc := reservationDocument{Reservations: make(map[string]model.Reservation, len(r.reservations))}
	for id, res := range r.reservations {
		doc.Reservations[id] = res
	}
	r.mu.RUnlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode reservation store: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write reservation store: %w", err)
	}
	return nil
}

func (r *FileReservationRepo) Save(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	r.reservations[res.ID] = *res
	r.mu.Unlock()
	return r.flush()
}

func (r *FileReservationRepo) Get(_ context.Context, id string) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &res, nil
}

func (r *FileReservationRepo) List(_ context.Context) ([]model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		out = append(out, res)
	}
	return out, nil
}

func (r *FileReservationRepo) ListByRoom(_ context.Context, roomID string) ([]model.Reservation, error) {
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

func (r *FileReservationRepo) ListByRequester(_ context.Context, requesterID string) ([]model.Reservation, error) {
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

func (r *FileReservationRepo) ListByRoomAndRange(_ context.Context, roomID string, start, end time.Time) ([]model.Reservation, error) {
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

func (r *FileReservationRepo) Update(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	if _, ok := r.reservations[res.ID]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	r.reservations[res.ID] = *res
	r.mu.Unlock()
	return r.flush()
}

func (r *FileReservationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.reservations[id]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	delete(r.reservations, id)
	r.mu.Unlock()
	return r.flush()
}
