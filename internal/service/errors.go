// Package service implements the application use cases on top of the
// repository ports: the reservation engine itself and room
// management.  Services own all cross-entity rules; entities validate
// their own fields, repositories only store.
package service

import (
	"errors"

	"github.com/iliyamo/meeting-room-reservation/internal/repository"
)

// Not-found sentinels, one per referenced entity so a client knows
// which id was wrong.  No amount of re-validating the same id helps;
// handlers translate these into HTTP 404.
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRequesterNotFound   = errors.New("requester not found")
)

// IsNotFound reports whether err is any of the not-found kinds,
// including the raw repository sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrRequesterNotFound) ||
		errors.Is(err, repository.ErrNotFound)
}
