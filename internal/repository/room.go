package repository

import (
	"context"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// RoomRepository stores bookable rooms.  The reservation service only
// uses Get as a narrow existence-and-activity lookup; the room
// management endpoints use the full set.
type RoomRepository interface {
	Save(ctx context.Context, room *model.Room) error
	Get(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Delete(ctx context.Context, id string) error
}
