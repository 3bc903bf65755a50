package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomValid(t *testing.T) {
	r, err := NewRoom("  Boardroom A  ", 12)
	require.NoError(t, err)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Boardroom A", r.Name)
	assert.Equal(t, 12, r.Capacity)
	assert.True(t, r.Active)
}

func TestNewRoomCollectsAllViolations(t *testing.T) {
	_, err := NewRoom("   ", 0)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "room name must not be empty")
	assert.Contains(t, verr.Messages, "room capacity must be between 1 and 1000")
}

func TestNewRoomLimits(t *testing.T) {
	_, err := NewRoom(strings.Repeat("x", 101), 5)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "room name must be at most 100 characters")

	_, err = NewRoom(strings.Repeat("x", 100), 1000)
	assert.NoError(t, err)

	_, err = NewRoom("ok", 1001)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "room capacity must be between 1 and 1000")
}

func TestRoomActivateDeactivate(t *testing.T) {
	r, err := NewRoom("Focus Booth", 2)
	require.NoError(t, err)

	r.Deactivate()
	assert.False(t, r.Active)
	r.Activate()
	assert.True(t, r.Active)
}
