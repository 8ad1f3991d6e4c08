package repo

import "errors"

var (
	// ErrItemNotFound is returned when no item matches the requested name.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemConflict is returned when an added item's name is already taken.
	ErrItemConflict = errors.New("item already exists")
)
