package repository

import (
	"context"
	"sync"
	"time"
)

// InMemoryTokenStore keeps refresh tokens in a map and is used when no
// Redis server is configured.  Sessions do not survive a restart,
// which only forces clients through login again.
type InMemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]tokenEntry // token hash -> entry
}

type tokenEntry struct {
	userID string
	exp    time.Time
}

// NewInMemoryTokenStore returns an empty token store.
func NewInMemoryTokenStore() *InMemoryTokenStore {
	return &InMemoryTokenStore{tokens: make(map[string]tokenEntry)}
}

func (s *InMemoryTokenStore) StoreRefresh(_ context.Context, userID, tokenHash string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenHash] = tokenEntry{userID: userID, exp: exp}
	return nil
}

func (s *InMemoryTokenStore) ValidateRefresh(_ context.Context, tokenHash string) (string, error) {
	s.mu.RLock()
	e, ok := s.tokens[tokenHash]
	s.mu.RUnlock()
	if !ok || time.Now().UTC().After(e.exp) {
		return "", ErrNotFound
	}
	return e.userID, nil
}

func (s *InMemoryTokenStore) Revoke(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenHash)
	return nil
}
