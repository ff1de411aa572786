package dispatch

import (
	"errors"
	"testing"
	"time"

	"cab/internal/domain"
)

func TestTicket_WaitReturnsOutcome(t *testing.T) {
	ticket := NewTicket("r1", "d1")

	go ticket.Complete(domain.RideOutcome{RequestID: "r1", Status: domain.RideStatusStarted, Fare: 50})

	outcome, err := ticket.Wait(time.Second)
	if err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if outcome.Status != domain.RideStatusStarted || outcome.Fare != 50 {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
}

func TestTicket_WaitTimesOut(t *testing.T) {
	ticket := NewTicket("r1", "d1")

	if _, err := ticket.Wait(10 * time.Millisecond); !errors.Is(err, ErrWaitTimeout) {
		t.Fatalf("expected ErrWaitTimeout, got %v", err)
	}
}

func TestTicket_CompleteIsOneShot(t *testing.T) {
	ticket := NewTicket("r1", "d1")

	ticket.Complete(domain.RideOutcome{RequestID: "r1", Status: domain.RideStatusStarted})
	// A second completion must not panic or replace the outcome.
	ticket.Complete(domain.RideOutcome{RequestID: "r1", Status: domain.RideStatusFailed})

	outcome, done := ticket.Outcome()
	if !done {
		t.Fatal("ticket not marked done")
	}
	if outcome.Status != domain.RideStatusStarted {
		t.Errorf("outcome overwritten: %+v", outcome)
	}
}

func TestTicket_OutcomePendingBeforeCompletion(t *testing.T) {
	ticket := NewTicket("r1", "d1")

	if _, done := ticket.Outcome(); done {
		t.Error("fresh ticket reported as done")
	}
}
