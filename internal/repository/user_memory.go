package repository

import (
	"context"
	"sync"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// InMemoryUserRepo keeps users in a map by id with a secondary index
// by normalized email for the uniqueness check and login lookup.
type InMemoryUserRepo struct {
	mu      sync.RWMutex
	users   map[string]model.User
	byEmail map[string]string // email -> user id
}

// NewInMemoryUserRepo returns an empty in-memory user repository.
func NewInMemoryUserRepo() *InMemoryUserRepo {
	return &InMemoryUserRepo{
		users:   make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

func (r *InMemoryUserRepo) Save(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return ErrEmailExists
	}
	r.users[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *InMemoryUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *InMemoryUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[model.NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.users[id]
	return &u, nil
}
