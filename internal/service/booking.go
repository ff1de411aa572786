package service

import (
	"context"

	"go.uber.org/zap"

	"cab/internal/domain"
	"cab/internal/repository"
)

// BookingService drives an accepted ride through billing and
// driver-state updates. It is invoked by the dispatch worker, one
// request at a time.
type BookingService struct {
	driverRepo repository.DriverRepository
	pricing    *PricingService
	log        *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	driverRepo repository.DriverRepository,
	pricing *PricingService,
	log *zap.Logger,
) *BookingService {
	return &BookingService{
		driverRepo: driverRepo,
		pricing:    pricing,
		log:        log,
	}
}

// ChooseRide claims the driver for a ride. Availability is checked and
// cleared in one critical section under the driver's own guard, so two
// concurrent bookings can never both start a ride with the same
// driver. Returns repository.ErrNotFound for an unknown driver.
func (s *BookingService) ChooseRide(ctx context.Context, userName, driverName string) (domain.RideStatus, error) {
	reserved, err := s.driverRepo.Reserve(ctx, driverName)
	if err != nil {
		return "", err
	}

	if !reserved {
		s.log.Info("driver not available",
			zap.String("user", userName),
			zap.String("driver", driverName))
		return domain.RideStatusUnavailable, nil
	}

	s.log.Info("ride started",
		zap.String("user", userName),
		zap.String("driver", driverName))
	return domain.RideStatusStarted, nil
}

// ProcessRideRequest executes one dequeued request: claim the driver,
// bill the trip, credit the driver, and move the driver to the
// destination. The driver stays unavailable after the ride until
// explicitly reset.
func (s *BookingService) ProcessRideRequest(ctx context.Context, request domain.RideRequest) (domain.RideOutcome, error) {
	outcome := domain.RideOutcome{RequestID: request.ID, Status: domain.RideStatusFailed}

	status, err := s.ChooseRide(ctx, request.UserName, request.DriverName)
	if err != nil {
		return outcome, err
	}
	if status != domain.RideStatusStarted {
		outcome.Status = status
		return outcome, nil
	}

	fare := s.pricing.Fare(request.Source, request.Destination)

	if err := s.driverRepo.AddEarnings(ctx, request.DriverName, fare); err != nil {
		// Billing never ran; release the claim so the driver is not
		// stranded unavailable.
		_ = s.driverRepo.SetAvailability(ctx, request.DriverName, true)
		return outcome, err
	}

	if err := s.driverRepo.UpdateLocation(ctx, request.DriverName, request.Destination); err != nil {
		return outcome, err
	}

	s.log.Info("ride completed",
		zap.String("request_id", request.ID),
		zap.String("user", request.UserName),
		zap.String("driver", request.DriverName),
		zap.Int("fare", fare))

	outcome.Status = domain.RideStatusStarted
	outcome.Fare = fare
	return outcome, nil
}

// EarningsReport sweeps the driver registry and reports each driver's
// accumulated earnings, logging one line per driver. The sweep holds
// the registry read lock and takes one driver guard at a time.
func (s *BookingService) EarningsReport(ctx context.Context) ([]domain.DriverEarning, error) {
	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]domain.DriverEarning, 0, len(drivers))
	for _, driver := range drivers {
		s.log.Info("driver earnings",
			zap.String("driver", driver.Name),
			zap.Int("earned", driver.Earnings))
		report = append(report, domain.DriverEarning{Name: driver.Name, Earnings: driver.Earnings})
	}
	return report, nil
}
