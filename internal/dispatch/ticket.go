package dispatch

import (
	"errors"
	"sync"
	"time"

	"cab/internal/domain"
)

// ErrWaitTimeout is returned when a caller gives up waiting for a
// ride request to be processed.
var ErrWaitTimeout = errors.New("timed out waiting for ride request completion")

// Ticket is the per-request completion signal handed to the caller at
// enqueue time. It fires exactly once, when the worker finishes the
// request (success or contained failure).
type Ticket struct {
	RequestID  string
	DriverName string

	mu      sync.Mutex
	outcome *domain.RideOutcome
	done    chan struct{}
}

// NewTicket creates a pending ticket for the given request.
func NewTicket(requestID, driverName string) *Ticket {
	return &Ticket{
		RequestID:  requestID,
		DriverName: driverName,
		done:       make(chan struct{}),
	}
}

// Complete records the outcome and releases all waiters. Later calls
// are ignored; the signal is one-shot.
func (t *Ticket) Complete(outcome domain.RideOutcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.outcome != nil {
		return
	}
	t.outcome = &outcome
	close(t.done)
}

// Wait blocks until the request has been processed or the timeout
// elapses.
func (t *Ticket) Wait(timeout time.Duration) (domain.RideOutcome, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return *t.outcome, nil
	case <-timer.C:
		return domain.RideOutcome{}, ErrWaitTimeout
	}
}

// Outcome returns the recorded outcome, or false while the request is
// still pending.
func (t *Ticket) Outcome() (domain.RideOutcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.outcome == nil {
		return domain.RideOutcome{}, false
	}
	return *t.outcome, true
}
