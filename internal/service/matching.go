package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/repository"
)

// DefaultSearchRadius is the matching radius in grid units.
const DefaultSearchRadius = 5.0

// MatchingService finds available drivers near a rider.
type MatchingService struct {
	userRepo   repository.UserRepository
	driverRepo repository.DriverRepository
	radius     float64
	log        *zap.Logger
}

// NewMatchingService creates a new MatchingService. radius <= 0 falls
// back to DefaultSearchRadius.
func NewMatchingService(
	userRepo repository.UserRepository,
	driverRepo repository.DriverRepository,
	radius float64,
	log *zap.Logger,
) *MatchingService {
	if radius <= 0 {
		radius = DefaultSearchRadius
	}
	return &MatchingService{
		userRepo:   userRepo,
		driverRepo: driverRepo,
		radius:     radius,
		log:        log,
	}
}

// FindRide returns the drivers that are available and within the
// search radius of the user's current location, in registry iteration
// order; no ranking is applied. An unknown user or an empty candidate
// set both yield an empty list, not an error.
func (s *MatchingService) FindRide(ctx context.Context, userName string, source, destination geo.Point) ([]*domain.Driver, error) {
	s.log.Info("finding ride",
		zap.String("user", userName),
		zap.Stringer("source", source),
		zap.Stringer("destination", destination))

	user, err := s.userRepo.GetByName(ctx, userName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("user not found", zap.String("user", userName))
			return nil, nil
		}
		return nil, err
	}

	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []*domain.Driver
	for _, driver := range drivers {
		if driver.Available && geo.Distance(driver.Location, user.Location) <= s.radius {
			candidates = append(candidates, driver)
		}
	}

	if len(candidates) == 0 {
		s.log.Info("no ride found", zap.String("user", userName))
	}
	return candidates, nil
}
