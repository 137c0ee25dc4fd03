package repositories

import "errors"

// ErrNotFound is returned by update, delete and lookup operations when no
// entity with the given id exists. Callers can distinguish a miss from a
// successful no-op.
var ErrNotFound = errors.New("entity not found")
