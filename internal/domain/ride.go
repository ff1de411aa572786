package domain

import "cab/internal/geo"

// RideStatus represents the outcome of a processed ride request.
type RideStatus string

const (
	RideStatusPending     RideStatus = "PENDING"
	RideStatusStarted     RideStatus = "STARTED"
	RideStatusUnavailable RideStatus = "DRIVER_UNAVAILABLE"
	RideStatusFailed      RideStatus = "FAILED"
)

// RideRequest is an immutable unit of work consumed exactly once by the
// dispatch worker.
type RideRequest struct {
	ID          string
	UserName    string
	Source      geo.Point
	Destination geo.Point
	DriverName  string
}

// RideOutcome is the terminal result of processing a ride request.
type RideOutcome struct {
	RequestID string
	Status    RideStatus
	Fare      int
}
