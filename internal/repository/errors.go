package repository

import "errors"

var (
	// ErrNotFound is returned by lookups and deletes when no row matches.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a write violates the email unique
	// constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
