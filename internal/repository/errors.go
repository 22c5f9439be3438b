package repository

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
// Repositories wrap it with the entity kind; callers match with errors.Is.
var ErrNotFound = errors.New("not found")
