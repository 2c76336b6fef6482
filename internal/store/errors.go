package store

import "errors"

var (
	// ErrUserNotFound is returned by lookups and mutations when no record
	// with the requested identifier exists in the store.
	ErrUserNotFound = errors.New("no user was found")
)
