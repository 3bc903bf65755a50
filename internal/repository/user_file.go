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

type userDocument struct {
	Users map[string]model.User `json:"users"`
}

// FileUserRepo is the durable user backend: cached map, full-file JSON
// rewrite on every mutation.  The email index is rebuilt from the
// document on Init rather than persisted.
type FileUserRepo struct {
	path string

	mu      sync.RWMutex
	users   map[string]model.User
	byEmail map[string]string
}

// NewFileUserRepo returns a user repository backed by the JSON file at
// path.  Call Init once at process start.
func NewFileUserRepo(path string) *FileUserRepo {
	return &FileUserRepo{
		path:    path,
		users:   make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

// Init loads the backing file; a missing file means start empty.
func (r *FileUserRepo) Init() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read user store: %w", err)
	}
	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse user store: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc.Users != nil {
		r.users = doc.Users
	}
	r.byEmail = make(map[string]string, len(r.users))
	for id, u := range r.users {
		r.byEmail[u.Email] = id
	}
	return nil
}

func (r *FileUserRepo) flush() error {
	r.mu.RLock()
	doc := userDocument{Users: make(map[string]model.User, len(r.users))}
	for id, u := range r.users {
		doc.Users[id] = u
	}
	r.mu.RUnlock()

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}
	return nil
}

func (r *FileUserRepo) Save(_ context.Context, u *model.User) error {
	r.mu.Lock()
	if _, ok := r.byEmail[u.Email]; ok {
		r.mu.Unlock()
		return ErrEmailExists
	}
	r.users[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	r.mu.Unlock()
	return r.flush()
}

func (r *FileUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *FileUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[model.NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.users[id]
	return &u, nil
}
