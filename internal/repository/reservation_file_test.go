package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

func TestFileReservationRepoMissingFile(t *testing.T) {
	repo := NewFileReservationRepo(filepath.Join(t.TempDir(), "reservations.json"))
	require.NoError(t, repo.Init())

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileReservationRepoCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileReservationRepo(path)
	err := repo.Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse reservation store")
}

func TestFileReservationRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reservations.json")

	repo := NewFileReservationRepo(path)
	require.NoError(t, repo.Init())

	a := newTestReservation(t, "room-1", 10, 12)
	b := newTestReservation(t, "room-2", 9, 11)
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	a2, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	a2.Cancel()
	require.NoError(t, repo.Update(ctx, a2))

	// A fresh instance over the same file sees everything.
	reopened := NewFileReservationRepo(path)
	require.NoError(t, reopened.Init())

	gotA, err := reopened.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ReservationCancelled, gotA.Status)
	assert.True(t, gotA.Start.Equal(a.Start))

	gotB, err := reopened.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "room-2", gotB.RoomID)
	assert.Equal(t, model.ReservationActive, gotB.Status)

	require.NoError(t, reopened.Delete(ctx, b.ID))

	again := NewFileReservationRepo(path)
	require.NoError(t, again.Init())
	_, err = again.Get(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileReservationRepoDocumentLayout(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reservations.json")

	repo := NewFileReservationRepo(path)
	require.NoError(t, repo.Init())
	res := newTestReservation(t, "room-1", 10, 12)
	require.NoError(t, repo.Save(ctx, res))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Contains(t, doc, "reservations")
	assert.Contains(t, doc["reservations"], res.ID)
}

func TestFileReservationRepoCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "reservations.json")
	repo := NewFileReservationRepo(path)
	require.NoError(t, repo.Init())

	res := newTestReservation(t, "room-1", 10, 12)
	require.NoError(t, repo.Save(context.Background(), res))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
