package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cab/internal/dispatch"
	"cab/internal/domain"
	"cab/internal/geo"
)

// MatchingServiceInterface defines the matching contract.
// This interface allows for testing with mock implementations.
type MatchingServiceInterface interface {
	FindRide(ctx context.Context, userName string, source, destination geo.Point) ([]*domain.Driver, error)
}

// Ensure MatchingService implements MatchingServiceInterface.
var _ MatchingServiceInterface = (*MatchingService)(nil)

// RideService accepts ride requests and hands them to the dispatch
// queue. A caller only learns synchronously whether a candidate driver
// was found; the booking outcome is observed via the returned ticket
// or by re-querying driver state.
type RideService struct {
	matching MatchingServiceInterface
	queue    *dispatch.Queue
	log      *zap.Logger

	mu      sync.RWMutex
	tickets map[string]*dispatch.Ticket
}

// NewRideService creates a new RideService.
func NewRideService(matching MatchingServiceInterface, queue *dispatch.Queue, log *zap.Logger) *RideService {
	return &RideService{
		matching: matching,
		queue:    queue,
		log:      log,
		tickets:  make(map[string]*dispatch.Ticket),
	}
}

// RequestRide matches the user and enqueues a request for the first
// candidate; no ranking is applied. Returns ErrNoDriverAvailable when
// nothing is nearby, leaving the queue untouched.
func (s *RideService) RequestRide(ctx context.Context, userName string, source, destination geo.Point) (*dispatch.Ticket, error) {
	s.log.Info("ride requested",
		zap.String("user", userName),
		zap.Stringer("source", source),
		zap.Stringer("destination", destination))

	candidates, err := s.matching.FindRide(ctx, userName, source, destination)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoDriverAvailable
	}

	driver := candidates[0]
	request := domain.RideRequest{
		ID:          uuid.New().String(),
		UserName:    userName,
		Source:      source,
		Destination: destination,
		DriverName:  driver.Name,
	}

	ticket := dispatch.NewTicket(request.ID, driver.Name)

	s.mu.Lock()
	s.tickets[request.ID] = ticket
	s.mu.Unlock()

	s.queue.Enqueue(request, ticket)

	s.log.Info("ride request queued",
		zap.String("request_id", request.ID),
		zap.String("user", userName),
		zap.String("driver", driver.Name))
	return ticket, nil
}

// GetTicket returns the completion ticket for a queued request.
func (s *RideService) GetTicket(requestID string) (*dispatch.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ticket, ok := s.tickets[requestID]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return ticket, nil
}
