package memory

import (
	"context"
	"sync"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/repository"
)

// driverEntry wraps a driver record with its own guard. Field updates
// for one driver are linearized by this mutex; the registry lock is
// only held in read mode while an entry is mutated, so different
// drivers update fully concurrently.
type driverEntry struct {
	mu     sync.Mutex
	driver domain.Driver
}

// DriverRepository is an in-memory driver registry. Map membership is
// guarded by a read/write lock (exclusive for inserts, shared for
// lookups and iteration); per-driver field updates go through the
// entry's own mutex.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[string]*driverEntry
}

// NewDriverRepository creates an empty driver registry.
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{drivers: make(map[string]*driverEntry)}
}

func (r *DriverRepository) Create(ctx context.Context, driver *domain.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drivers[driver.Name]; ok {
		return repository.ErrDuplicate
	}

	r.drivers[driver.Name] = &driverEntry{driver: *driver}
	return nil
}

func (r *DriverRepository) GetByName(ctx context.Context, name string) (*domain.Driver, error) {
	entry, err := r.entry(name)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	d := entry.driver
	return &d, nil
}

// GetAll returns a point-in-time copy of every driver. The registry
// read lock is held across the sweep; each entry guard is taken in
// turn, never two at once.
func (r *DriverRepository) GetAll(ctx context.Context) ([]*domain.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Driver, 0, len(r.drivers))
	for _, entry := range r.drivers {
		entry.mu.Lock()
		d := entry.driver
		entry.mu.Unlock()
		result = append(result, &d)
	}
	return result, nil
}

func (r *DriverRepository) UpdateLocation(ctx context.Context, name string, location geo.Point) error {
	entry, err := r.entry(name)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.driver.Location = location
	return nil
}

func (r *DriverRepository) SetAvailability(ctx context.Context, name string, available bool) error {
	entry, err := r.entry(name)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.driver.Available = available
	return nil
}

func (r *DriverRepository) AddEarnings(ctx context.Context, name string, amount int) error {
	if amount < 0 {
		return repository.ErrInvalidAmount
	}

	entry, err := r.entry(name)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.driver.Earnings += amount
	return nil
}

// Reserve checks and clears availability in one critical section, so
// two concurrent bookings can never both claim the same driver.
func (r *DriverRepository) Reserve(ctx context.Context, name string) (bool, error) {
	entry, err := r.entry(name)
	if err != nil {
		return false, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.driver.Available {
		return false, nil
	}
	entry.driver.Available = false
	return true, nil
}

// entry looks up a driver entry under the shared registry lock.
func (r *DriverRepository) entry(name string) (*driverEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.drivers[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return entry, nil
}
