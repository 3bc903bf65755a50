package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryTokenStore()

	exp := time.Now().UTC().Add(time.Hour)
	require.NoError(t, store.StoreRefresh(ctx, "user-1", "hash-1", exp))

	userID, err := store.ValidateRefresh(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, store.Revoke(ctx, "hash-1"))
	_, err = store.ValidateRefresh(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryTokenStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryTokenStore()

	require.NoError(t, store.StoreRefresh(ctx, "user-1", "hash-1", time.Now().UTC().Add(-time.Minute)))
	_, err := store.ValidateRefresh(ctx, "hash-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryTokenStoreRevokeUnknownIsNoop(t *testing.T) {
	store := NewInMemoryTokenStore()
	assert.NoError(t, store.Revoke(context.Background(), "never-stored"))
}
