package repositories

import "errors"

// ErrNotFound is returned when no record exists for the requested id.
// Handlers translate it into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a record with the same id already exists.
// Handlers translate it into a 409 response.
var ErrConflict = errors.New("already exists")
