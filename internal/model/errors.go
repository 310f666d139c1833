package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores when a unique constraint is violated.
	ErrAlreadyExists = errors.New("already exists")
)
