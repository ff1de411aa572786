package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"cab/internal/domain"
)

const (
	// DefaultPollInterval is how long the worker waits for a request
	// before rechecking its running flag.
	DefaultPollInterval = 1 * time.Second

	// DefaultJoinTimeout bounds how long callers wait for the worker
	// to exit after Stop.
	DefaultJoinTimeout = 5 * time.Second
)

// ErrJoinTimeout is returned when the worker fails to exit within the
// join window. The condition is reported, not treated as fatal.
var ErrJoinTimeout = errors.New("worker did not stop within the join timeout")

// Processor executes one dequeued ride request. Implementations must
// contain failures: a returned error is logged and the request is
// marked failed, but the worker loop keeps running.
type Processor interface {
	ProcessRideRequest(ctx context.Context, request domain.RideRequest) (domain.RideOutcome, error)
}

// Worker is the single consumer draining the ride request queue.
// Requests are processed strictly one at a time in arrival order;
// in-flight processing always runs to completion before the running
// flag is rechecked.
type Worker struct {
	queue        *Queue
	processor    Processor
	log          *zap.Logger
	pollInterval time.Duration

	running atomic.Bool
	done    chan struct{}
}

// NewWorker creates a worker for the given queue. pollInterval <= 0
// falls back to DefaultPollInterval.
func NewWorker(queue *Queue, processor Processor, log *zap.Logger, pollInterval time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Worker{
		queue:        queue,
		processor:    processor,
		log:          log,
		pollInterval: pollInterval,
		done:         make(chan struct{}),
	}
}

// Start launches the worker loop in its own goroutine.
func (w *Worker) Start() {
	w.running.Store(true)
	go w.loop()
}

// Stop requests a graceful stop. The worker observes the flag within
// one poll interval. Requests still queued at that point remain
// unprocessed.
func (w *Worker) Stop() {
	w.running.Store(false)
}

// Join waits up to timeout for the worker loop to exit.
func (w *Worker) Join(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-w.done:
		return nil
	case <-timer.C:
		return ErrJoinTimeout
	}
}

func (w *Worker) loop() {
	defer close(w.done)

	w.log.Info("dispatch worker started")
	for w.running.Load() {
		it, ok := w.queue.Dequeue(w.pollInterval)
		if !ok {
			continue
		}
		w.handle(it)
	}
	w.log.Info("dispatch worker stopped", zap.Int("pending_requests", w.queue.Len()))
}

// handle runs one request through the processor. The ticket fires no
// matter how processing ends, so waiters are never blocked by a
// failed request.
func (w *Worker) handle(it item) {
	outcome := domain.RideOutcome{RequestID: it.request.ID, Status: domain.RideStatusFailed}

	defer func() {
		if rec := recover(); rec != nil {
			w.log.Error("ride request processing panicked",
				zap.String("request_id", it.request.ID),
				zap.Any("panic", rec))
		}
		it.ticket.Complete(outcome)
	}()

	w.log.Info("processing ride request",
		zap.String("request_id", it.request.ID),
		zap.String("user", it.request.UserName),
		zap.String("driver", it.request.DriverName))

	result, err := w.processor.ProcessRideRequest(context.Background(), it.request)
	if err != nil {
		w.log.Error("ride request processing failed",
			zap.String("request_id", it.request.ID),
			zap.Error(err))
		return
	}
	outcome = result
}
