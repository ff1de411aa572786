package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"cab/internal/domain"
)

// recordingProcessor records the order requests start processing in.
type recordingProcessor struct {
	mu    sync.Mutex
	order []string

	fail  map[string]error
	panic map[string]bool
	block chan struct{}
}

func newRecordingProcessor() *recordingProcessor {
	return &recordingProcessor{
		fail:  make(map[string]error),
		panic: make(map[string]bool),
	}
}

func (p *recordingProcessor) ProcessRideRequest(ctx context.Context, request domain.RideRequest) (domain.RideOutcome, error) {
	p.mu.Lock()
	p.order = append(p.order, request.ID)
	p.mu.Unlock()

	if p.block != nil {
		<-p.block
	}
	if p.panic[request.ID] {
		panic("injected failure")
	}
	if err := p.fail[request.ID]; err != nil {
		return domain.RideOutcome{}, err
	}
	return domain.RideOutcome{RequestID: request.ID, Status: domain.RideStatusStarted, Fare: 50}, nil
}

func (p *recordingProcessor) processed() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.order...)
}

func TestWorker_ProcessesInArrivalOrder(t *testing.T) {
	q := NewQueue()
	proc := newRecordingProcessor()
	w := NewWorker(q, proc, zap.NewNop(), 10*time.Millisecond)

	tickets := make([]*Ticket, 0, 3)
	for _, id := range []string{"r1", "r2", "r3"} {
		ticket := NewTicket(id, "d1")
		tickets = append(tickets, ticket)
		q.Enqueue(domain.RideRequest{ID: id}, ticket)
	}

	w.Start()
	defer func() {
		w.Stop()
		_ = w.Join(time.Second)
	}()

	for _, ticket := range tickets {
		if _, err := ticket.Wait(time.Second); err != nil {
			t.Fatalf("request %s never completed: %v", ticket.RequestID, err)
		}
	}

	got := proc.processed()
	want := []string{"r1", "r2", "r3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("processing order %v, want %v", got, want)
		}
	}
}

func TestWorker_SignalsCompletionOnProcessorError(t *testing.T) {
	q := NewQueue()
	proc := newRecordingProcessor()
	proc.fail["r1"] = errors.New("boom")
	w := NewWorker(q, proc, zap.NewNop(), 10*time.Millisecond)

	ticket := NewTicket("r1", "d1")
	q.Enqueue(domain.RideRequest{ID: "r1"}, ticket)

	w.Start()
	defer func() {
		w.Stop()
		_ = w.Join(time.Second)
	}()

	outcome, err := ticket.Wait(time.Second)
	if err != nil {
		t.Fatalf("completion signal never fired: %v", err)
	}
	if outcome.Status != domain.RideStatusFailed {
		t.Errorf("expected FAILED outcome, got %+v", outcome)
	}
}

func TestWorker_SurvivesProcessorPanic(t *testing.T) {
	q := NewQueue()
	proc := newRecordingProcessor()
	proc.panic["r1"] = true
	w := NewWorker(q, proc, zap.NewNop(), 10*time.Millisecond)

	panicked := NewTicket("r1", "d1")
	healthy := NewTicket("r2", "d1")
	q.Enqueue(domain.RideRequest{ID: "r1"}, panicked)
	q.Enqueue(domain.RideRequest{ID: "r2"}, healthy)

	w.Start()
	defer func() {
		w.Stop()
		_ = w.Join(time.Second)
	}()

	outcome, err := panicked.Wait(time.Second)
	if err != nil {
		t.Fatalf("completion signal never fired for panicked request: %v", err)
	}
	if outcome.Status != domain.RideStatusFailed {
		t.Errorf("expected FAILED outcome, got %+v", outcome)
	}

	// The loop must keep running after the contained failure.
	if outcome, err := healthy.Wait(time.Second); err != nil || outcome.Status != domain.RideStatusStarted {
		t.Errorf("worker did not process the next request: outcome=%+v err=%v", outcome, err)
	}
}

func TestWorker_StopAndJoin(t *testing.T) {
	q := NewQueue()
	proc := newRecordingProcessor()
	w := NewWorker(q, proc, zap.NewNop(), 10*time.Millisecond)

	w.Start()
	w.Stop()

	if err := w.Join(time.Second); err != nil {
		t.Fatalf("worker did not stop: %v", err)
	}
}

func TestWorker_PendingRequestsRemainUnprocessedAfterStop(t *testing.T) {
	q := NewQueue()
	proc := newRecordingProcessor()
	proc.block = make(chan struct{})
	w := NewWorker(q, proc, zap.NewNop(), 10*time.Millisecond)

	first := NewTicket("r1", "d1")
	q.Enqueue(domain.RideRequest{ID: "r1"}, first)

	w.Start()

	// Wait for the in-flight request to start, stop the worker, then
	// queue more work behind it.
	for len(proc.processed()) == 0 {
		time.Sleep(time.Millisecond)
	}
	w.Stop()
	q.Enqueue(domain.RideRequest{ID: "r2"}, NewTicket("r2", "d1"))
	q.Enqueue(domain.RideRequest{ID: "r3"}, NewTicket("r3", "d1"))

	// Release the in-flight request; it always runs to completion.
	close(proc.block)
	if err := w.Join(time.Second); err != nil {
		t.Fatalf("worker did not stop: %v", err)
	}

	if _, err := first.Wait(time.Second); err != nil {
		t.Errorf("in-flight request did not complete: %v", err)
	}
	if got := proc.processed(); len(got) != 1 {
		t.Errorf("stopped worker processed queued leftovers: %v", got)
	}
	if q.Len() != 2 {
		t.Errorf("expected 2 unprocessed requests left, got %d", q.Len())
	}
}
