package repository

import (
	"context"

	"cab/internal/domain"
	"cab/internal/geo"
)

// UserRepository defines the registry operations for users.
type UserRepository interface {
	// Create adds a new user. Returns ErrDuplicate if the name is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByName retrieves a user by name.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// GetAll retrieves a snapshot of all users.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// UpdateLocation moves an existing user.
	UpdateLocation(ctx context.Context, name string, location geo.Point) error
}
