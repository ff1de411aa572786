package service

import (
	"context"

	"go.uber.org/zap"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/repository"
)

// DriverService handles driver onboarding and state changes.
type DriverService struct {
	driverRepo repository.DriverRepository
	log        *zap.Logger
}

// NewDriverService creates a new DriverService.
func NewDriverService(driverRepo repository.DriverRepository, log *zap.Logger) *DriverService {
	return &DriverService{driverRepo: driverRepo, log: log}
}

// RegisterDriverRequest contains the parameters for onboarding a driver.
type RegisterDriverRequest struct {
	Name          string
	Gender        string
	Age           int
	Vehicle       string
	VehicleNumber string
	Location      geo.Point
}

// Register onboards a new driver, available by default. Duplicate
// names are rejected with repository.ErrDuplicate.
func (s *DriverService) Register(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	if req.Name == "" {
		return nil, ErrInvalidName
	}
	if req.Age <= 0 {
		return nil, ErrInvalidAge
	}
	if req.Vehicle == "" || req.VehicleNumber == "" {
		return nil, ErrInvalidVehicle
	}

	driver := &domain.Driver{
		Name:          req.Name,
		Gender:        req.Gender,
		Age:           req.Age,
		Vehicle:       req.Vehicle,
		VehicleNumber: req.VehicleNumber,
		Location:      req.Location,
		Available:     true,
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.log.Info("driver added", zap.String("driver", driver.Name))
	return driver, nil
}

// UpdateLocation moves an existing driver.
func (s *DriverService) UpdateLocation(ctx context.Context, name string, location geo.Point) error {
	if name == "" {
		return ErrInvalidName
	}

	if err := s.driverRepo.UpdateLocation(ctx, name, location); err != nil {
		return err
	}

	s.log.Info("driver location updated",
		zap.String("driver", name),
		zap.Stringer("location", location))
	return nil
}

// SetAvailability flips a driver's availability flag, e.g. to bring a
// driver back online after a completed ride.
func (s *DriverService) SetAvailability(ctx context.Context, name string, available bool) error {
	if name == "" {
		return ErrInvalidName
	}

	if err := s.driverRepo.SetAvailability(ctx, name, available); err != nil {
		return err
	}

	s.log.Info("driver status changed",
		zap.String("driver", name),
		zap.Bool("available", available))
	return nil
}

// List returns a snapshot of all drivers.
func (s *DriverService) List(ctx context.Context) ([]*domain.Driver, error) {
	return s.driverRepo.GetAll(ctx)
}
