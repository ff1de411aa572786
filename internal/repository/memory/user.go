package memory

import (
	"context"
	"sync"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/repository"
)

// UserRepository is an in-memory user registry. A single mutex guards
// the whole map; user lookups are cheap and infrequent relative to
// driver lookups, so no reader/writer split is needed.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

// NewUserRepository creates an empty user registry.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Name]; ok {
		return repository.ErrDuplicate
	}

	u := *user
	r.users[user.Name] = &u
	return nil
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[name]
	if !ok {
		return nil, repository.ErrNotFound
	}

	// Return a copy to avoid mutation issues.
	u := *user
	return &u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		u := *user
		result = append(result, &u)
	}
	return result, nil
}

func (r *UserRepository) UpdateLocation(ctx context.Context, name string, location geo.Point) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[name]
	if !ok {
		return repository.ErrNotFound
	}

	user.Location = location
	return nil
}
