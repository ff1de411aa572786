package dispatch

import (
	"sync"
	"time"

	"cab/internal/domain"
)

// item pairs a queued request with its completion ticket.
type item struct {
	request domain.RideRequest
	ticket  *Ticket
}

// Queue is an unbounded, thread-safe FIFO of ride requests. Enqueue
// never blocks; Dequeue waits up to a timeout for work to arrive.
type Queue struct {
	mu     sync.Mutex
	items  []item
	notify chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{}, 1)}
}

// Enqueue appends a request and wakes the worker if it is waiting.
func (q *Queue) Enqueue(request domain.RideRequest, ticket *Ticket) {
	q.mu.Lock()
	q.items = append(q.items, item{request: request, ticket: ticket})
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Dequeue pops the oldest request, waiting up to timeout for one to
// arrive. Returns false on timeout with nothing available.
func (q *Queue) Dequeue(timeout time.Duration) (item, bool) {
	if it, ok := q.pop(); ok {
		return it, true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-q.notify:
			if it, ok := q.pop(); ok {
				return it, true
			}
			// Notification consumed by a concurrent pop; keep waiting.
		case <-timer.C:
			return item{}, false
		}
	}
}

// Len reports how many requests are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) pop() (item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return item{}, false
	}

	it := q.items[0]
	q.items = q.items[1:]
	return it, true
}
