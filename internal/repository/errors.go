package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when registering an entity whose key is
	// already taken. Existing records are never overwritten.
	ErrDuplicate = errors.New("entity already registered")

	// ErrInvalidAmount is returned when an earnings update would
	// decrease a driver's total.
	ErrInvalidAmount = errors.New("earnings amount must be non-negative")
)
