// Command scenario runs the demo flow against the dispatch core:
// onboarding from free-form detail strings, a few matching queries,
// one booked ride, and the earnings report.
package main

import (
	"context"
	"log"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cab/internal/config"
	"cab/internal/dispatch"
	"cab/internal/geo"
	"cab/internal/repository/memory"
	"cab/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	userRepo := memory.NewUserRepository()
	driverRepo := memory.NewDriverRepository()

	matching := service.NewMatchingService(userRepo, driverRepo, cfg.Matching.Radius, logger)
	pricing := service.NewPricingService(cfg.Pricing.Rate)
	booking := service.NewBookingService(driverRepo, pricing, logger)
	users := service.NewUserService(userRepo, logger)
	drivers := service.NewDriverService(driverRepo, logger)

	queue := dispatch.NewQueue()
	worker := dispatch.NewWorker(queue, booking, logger, cfg.Dispatch.PollInterval)
	rides := service.NewRideService(matching, queue, logger)

	// Onboard 3 users.
	addUser(ctx, users, "Khanh L., M, 23")
	mustDo(users.UpdateLocation(ctx, "Khanh L.", geo.Point{X: 0, Y: 0}), logger)

	addUser(ctx, users, "Thu Tr., F, 22")
	mustDo(users.UpdateLocation(ctx, "Thu Tr.", geo.Point{X: 10, Y: 0}), logger)

	addUser(ctx, users, "Blue, M, 2")
	mustDo(users.UpdateLocation(ctx, "Blue", geo.Point{X: 15, Y: 6}), logger)

	// Onboard 3 drivers.
	addDriver(ctx, drivers, "Driver1, M, 22", "Swift, KA-01-12345", geo.Point{X: 10, Y: 1})
	addDriver(ctx, drivers, "Driver2, M, 29", "Swift, KA-01-12345", geo.Point{X: 11, Y: 10})
	addDriver(ctx, drivers, "Driver3, M, 24", "Swift, KA-01-12345", geo.Point{X: 5, Y: 3})

	worker.Start()

	// Matching queries.
	_, _ = matching.FindRide(ctx, "Khanh L.", geo.Point{X: 0, Y: 0}, geo.Point{X: 20, Y: 1})
	_, _ = matching.FindRide(ctx, "Thu Tr.", geo.Point{X: 10, Y: 0}, geo.Point{X: 15, Y: 3})

	// Book a ride and wait for the worker to process it.
	ticket, err := rides.RequestRide(ctx, "Thu Tr.", geo.Point{X: 10, Y: 0}, geo.Point{X: 15, Y: 3})
	if err != nil {
		logger.Error("ride request rejected", zap.Error(err))
	} else {
		outcome, err := ticket.Wait(cfg.Dispatch.JoinTimeout)
		if err != nil {
			logger.Warn("ride request processing timed out")
		} else {
			logger.Info("ride request completed",
				zap.String("status", string(outcome.Status)),
				zap.Int("fare", outcome.Fare))
		}
	}

	// Post-ride relocations and a status change.
	mustDo(users.UpdateLocation(ctx, "Thu Tr.", geo.Point{X: 15, Y: 3}), logger)
	mustDo(drivers.UpdateLocation(ctx, "Driver1", geo.Point{X: 15, Y: 3}), logger)
	mustDo(drivers.SetAvailability(ctx, "Driver1", false), logger)

	_, _ = matching.FindRide(ctx, "Blue", geo.Point{X: 15, Y: 6}, geo.Point{X: 20, Y: 4})

	if _, err := booking.EarningsReport(ctx); err != nil {
		logger.Error("earnings report failed", zap.Error(err))
	}

	worker.Stop()
	if err := worker.Join(cfg.Dispatch.JoinTimeout); err != nil {
		logger.Error("worker shutdown", zap.Error(err))
	}
}

// addUser onboards a user from a "Name, Gender, Age" detail string.
func addUser(ctx context.Context, users *service.UserService, details string) {
	name, gender, age := parsePersonDetails(details)
	if _, err := users.Register(ctx, service.RegisterUserRequest{Name: name, Gender: gender, Age: age}); err != nil {
		log.Fatalf("failed to add user %q: %v", name, err)
	}
}

// addDriver onboards a driver from "Name, Gender, Age" and
// "Vehicle, Number" detail strings.
func addDriver(ctx context.Context, drivers *service.DriverService, details, vehicleDetails string, location geo.Point) {
	name, gender, age := parsePersonDetails(details)
	vehicle, number := parseVehicleDetails(vehicleDetails)
	_, err := drivers.Register(ctx, service.RegisterDriverRequest{
		Name:          name,
		Gender:        gender,
		Age:           age,
		Vehicle:       vehicle,
		VehicleNumber: number,
		Location:      location,
	})
	if err != nil {
		log.Fatalf("failed to add driver %q: %v", name, err)
	}
}

// parsePersonDetails splits a "Name, Gender, Age" string. The last two
// fields are gender and age; the name may itself contain commas.
func parsePersonDetails(details string) (name, gender string, age int) {
	parts := strings.Split(details, ",")
	if len(parts) < 3 {
		log.Fatalf("malformed person details: %q", details)
	}

	ageStr := strings.TrimSpace(parts[len(parts)-1])
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		log.Fatalf("malformed age in %q: %v", details, err)
	}

	gender = strings.TrimSpace(parts[len(parts)-2])
	name = strings.TrimSpace(strings.Join(parts[:len(parts)-2], ","))
	return name, gender, age
}

// parseVehicleDetails splits a "Vehicle, Number" string.
func parseVehicleDetails(details string) (vehicle, number string) {
	parts := strings.SplitN(details, ",", 2)
	if len(parts) < 2 {
		log.Fatalf("malformed vehicle details: %q", details)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func mustDo(err error, logger *zap.Logger) {
	if err != nil {
		logger.Error("scenario step failed", zap.Error(err))
	}
}
