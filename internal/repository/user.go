package repository

import (
	"context"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// UserRepository stores user accounts.  The reservation service only
// uses GetByID as a narrow does-the-requester-exist lookup; the auth
// endpoints use the rest.
type UserRepository interface {
	// Save stores a new user; ErrEmailExists if the normalized email
	// is already registered.
	Save(ctx context.Context, u *model.User) error
	// GetByID returns the user with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail returns the user with the given normalized email, or
	// ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
