package service

import "errors"

var (
	// ErrNoDriverAvailable is returned when no driver can be matched.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrInvalidName is returned when a user or driver name is empty.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidAge is returned when an age is not positive.
	ErrInvalidAge = errors.New("invalid age")

	// ErrInvalidVehicle is returned when a vehicle descriptor or number is empty.
	ErrInvalidVehicle = errors.New("invalid vehicle details")

	// ErrRequestNotFound is returned when a ride request id is unknown.
	ErrRequestNotFound = errors.New("ride request not found")
)
