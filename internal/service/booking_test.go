package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/repository"
	"cab/internal/repository/memory"
)

func newBookingFixture(t *testing.T) (*BookingService, *memory.DriverRepository) {
	t.Helper()
	driverRepo := memory.NewDriverRepository()
	return NewBookingService(driverRepo, NewPricingService(0), zap.NewNop()), driverRepo
}

func TestChooseRide_UnknownDriver(t *testing.T) {
	s, _ := newBookingFixture(t)

	if _, err := s.ChooseRide(context.Background(), "A", "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChooseRide_UnavailableDriver(t *testing.T) {
	ctx := context.Background()
	s, driverRepo := newBookingFixture(t)
	seedDriver(t, driverRepo, "D1", geo.Point{X: 1, Y: 1}, false)

	status, err := s.ChooseRide(ctx, "A", "D1")
	if err != nil {
		t.Fatalf("choose ride failed: %v", err)
	}
	if status != domain.RideStatusUnavailable {
		t.Errorf("expected DRIVER_UNAVAILABLE, got %s", status)
	}
}

func TestChooseRide_ReservesAtomically(t *testing.T) {
	ctx := context.Background()
	s, driverRepo := newBookingFixture(t)
	seedDriver(t, driverRepo, "D1", geo.Point{X: 1, Y: 1}, true)

	const callers = 10

	results := make(chan domain.RideStatus, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := s.ChooseRide(ctx, "A", "D1")
			if err != nil {
				t.Errorf("choose ride failed: %v", err)
				return
			}
			results <- status
		}()
	}
	wg.Wait()
	close(results)

	started := 0
	for status := range results {
		if status == domain.RideStatusStarted {
			started++
		}
	}
	if started != 1 {
		t.Errorf("expected exactly one started ride, got %d", started)
	}
}

func TestProcessRideRequest_Success(t *testing.T) {
	ctx := context.Background()
	s, driverRepo := newBookingFixture(t)
	seedDriver(t, driverRepo, "D1", geo.Point{X: 10, Y: 1}, true)

	request := domain.RideRequest{
		ID:          "r1",
		UserName:    "Thu Tr.",
		Source:      geo.Point{X: 0, Y: 0},
		Destination: geo.Point{X: 3, Y: 4},
		DriverName:  "D1",
	}

	outcome, err := s.ProcessRideRequest(ctx, request)
	if err != nil {
		t.Fatalf("processing failed: %v", err)
	}
	if outcome.Status != domain.RideStatusStarted {
		t.Fatalf("expected STARTED, got %s", outcome.Status)
	}
	if outcome.Fare != 50 {
		t.Errorf("fare = %d, want 50", outcome.Fare)
	}

	driver, _ := driverRepo.GetByName(ctx, "D1")
	if driver.Earnings != 50 {
		t.Errorf("earnings = %d, want 50", driver.Earnings)
	}
	if driver.Location != (geo.Point{X: 3, Y: 4}) {
		t.Errorf("driver not moved to the destination: %v", driver.Location)
	}
	if driver.Available {
		t.Error("driver still available after the ride started")
	}
}

func TestProcessRideRequest_DriverAlreadyEngaged(t *testing.T) {
	ctx := context.Background()
	s, driverRepo := newBookingFixture(t)
	seedDriver(t, driverRepo, "D1", geo.Point{X: 1, Y: 1}, false)

	request := domain.RideRequest{ID: "r1", UserName: "A", Destination: geo.Point{X: 9, Y: 9}, DriverName: "D1"}
	outcome, err := s.ProcessRideRequest(ctx, request)
	if err != nil {
		t.Fatalf("processing failed: %v", err)
	}
	if outcome.Status != domain.RideStatusUnavailable {
		t.Errorf("expected DRIVER_UNAVAILABLE, got %s", outcome.Status)
	}

	driver, _ := driverRepo.GetByName(ctx, "D1")
	if driver.Earnings != 0 || driver.Location != (geo.Point{X: 1, Y: 1}) {
		t.Errorf("engaged driver mutated: %+v", driver)
	}
}

func TestProcessRideRequest_UnknownDriver(t *testing.T) {
	s, _ := newBookingFixture(t)

	request := domain.RideRequest{ID: "r1", UserName: "A", DriverName: "ghost"}
	outcome, err := s.ProcessRideRequest(context.Background(), request)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if outcome.Status != domain.RideStatusFailed {
		t.Errorf("expected FAILED outcome, got %s", outcome.Status)
	}
}

func TestEarningsReport(t *testing.T) {
	ctx := context.Background()
	s, driverRepo := newBookingFixture(t)
	seedDriver(t, driverRepo, "D1", geo.Point{X: 1, Y: 1}, true)
	seedDriver(t, driverRepo, "D2", geo.Point{X: 2, Y: 2}, true)
	_ = driverRepo.AddEarnings(ctx, "D1", 50)

	report, err := s.EarningsReport(ctx)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report))
	}

	byName := make(map[string]int)
	for _, row := range report {
		byName[row.Name] = row.Earnings
	}
	if byName["D1"] != 50 || byName["D2"] != 0 {
		t.Errorf("unexpected report: %v", byName)
	}
}
