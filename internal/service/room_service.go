package service

import (
	"context"
	"errors"

	"github.com/iliyamo/meeting-room-reservation/internal/model"
	"github.com/iliyamo/meeting-room-reservation/internal/repository"
)

// RoomService manages the room catalogue.  Deactivating a room only
// blocks new reservations; existing bookings are untouched.
type RoomService struct {
	rooms repository.RoomRepository
}

// NewRoomService wires the service to a room repository.
func NewRoomService(rooms repository.RoomRepository) *RoomService {
	return &RoomService{rooms: rooms}
}

// CreateRoom validates and stores a new active room.
func (s *RoomService) CreateRoom(ctx context.Context, name string, capacity int) (*model.Room, error) {
	room, err := model.NewRoom(name, capacity)
	if err != nil {
		return nil, err
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// GetRoom returns one room by id.
func (s *RoomService) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.rooms.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRoomNotFound
	}
	return room, err
}

// ListRooms returns the whole catalogue.
func (s *RoomService) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.rooms.List(ctx)
}

// ActivateRoom re-enables bookings for a room.
func (s *RoomService) ActivateRoom(ctx context.Context, id string) (*model.Room, error) {
	return s.toggle(ctx, id, (*model.Room).Activate)
}

// DeactivateRoom blocks new bookings for a room.
func (s *RoomService) DeactivateRoom(ctx context.Context, id string) (*model.Room, error) {
	return s.toggle(ctx, id, (*model.Room).Deactivate)
}

func (s *RoomService) toggle(ctx context.Context, id string, apply func(*model.Room)) (*model.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(room)
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}
