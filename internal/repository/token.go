package repository

import (
	"context"
	"time"
)

// TokenStore persists refresh-token hashes between the login that
// issues them and the refresh/logout that consumes them.  Only the
// SHA-256 hash of the raw token is ever stored; a stolen store cannot
// be replayed as a session.
type TokenStore interface {
	// StoreRefresh records a token hash for a user until exp.
	StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error
	// ValidateRefresh returns the owning user id if the hash exists
	// and has not expired, ErrNotFound otherwise.
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	// Revoke drops a token hash.  Revoking an unknown hash is a no-op.
	Revoke(ctx context.Context, tokenHash string) error
}
