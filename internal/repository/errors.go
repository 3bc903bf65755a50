// Package repository defines the storage ports of the application and
// their implementations.  The reservation engine ships two swappable
// backends, an in-memory map and a JSON file, both guarded by a
// read-write lock; rooms and users additionally have a MySQL backend.
// Sentinel errors declared here let higher layers distinguish failure
// scenarios without depending on a concrete backend.
package repository

import "errors"

// ErrNotFound is returned when the requested record does not exist.
// Update and Delete on an absent id report it as well; they are never
// silent no-ops.  Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("record not found")

// ErrEmailExists is returned when creating a user with an email that
// is already registered.  Handlers translate it into an HTTP 409
// response.
var ErrEmailExists = errors.New("email already exists")
