package repository

import (
	"context"

	"cab/internal/domain"
	"cab/internal/geo"
)

// DriverRepository defines the registry operations for drivers.
//
// Implementations must linearize field updates per driver: two callers
// mutating the same driver never interleave partial writes, while
// different drivers update fully concurrently.
type DriverRepository interface {
	// Create adds a new driver. Returns ErrDuplicate if the name is taken.
	Create(ctx context.Context, driver *domain.Driver) error

	// GetByName retrieves a driver by name.
	GetByName(ctx context.Context, name string) (*domain.Driver, error)

	// GetAll retrieves a point-in-time snapshot of all drivers.
	GetAll(ctx context.Context) ([]*domain.Driver, error)

	// UpdateLocation moves an existing driver.
	UpdateLocation(ctx context.Context, name string, location geo.Point) error

	// SetAvailability flips a driver's availability flag.
	SetAvailability(ctx context.Context, name string, available bool) error

	// AddEarnings credits a non-negative amount to a driver's total.
	AddEarnings(ctx context.Context, name string, amount int) error

	// Reserve atomically marks an available driver unavailable.
	// Returns false if the driver was already engaged.
	Reserve(ctx context.Context, name string) (bool, error)
}
