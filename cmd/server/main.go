package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cab/internal/app"
	"cab/internal/config"
	"cab/internal/dispatch"
	"cab/internal/handler"
	"cab/internal/repository/memory"
	"cab/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic if enabled.
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.Error("failed to initialize New Relic", zap.Error(err))
		} else {
			logger.Info("New Relic enabled", zap.String("app", cfg.NewRelic.AppName))
		}
	}

	// Redis only backs the idempotency middleware; the registries are
	// in-memory and live for the process lifetime.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		logger.Info("connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// Wire dependencies.
	server, worker := wireServer(cfg, logger, redisClient, nrApp)

	// Start the dispatch worker.
	worker.Start()

	// Start server in goroutine.
	go func() {
		logger.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	worker.Stop()
	if err := worker.Join(cfg.Dispatch.JoinTimeout); err != nil {
		logger.Error("worker shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// wireServer wires all dependencies and returns the HTTP server and
// the dispatch worker.
func wireServer(cfg *config.Config, logger *zap.Logger, redisClient *redis.Client, nrApp *newrelic.Application) (*http.Server, *dispatch.Worker) {
	// Initialize registries.
	userRepo := memory.NewUserRepository()
	driverRepo := memory.NewDriverRepository()

	// Initialize services.
	matchingService := service.NewMatchingService(userRepo, driverRepo, cfg.Matching.Radius, logger)
	pricingService := service.NewPricingService(cfg.Pricing.Rate)
	bookingService := service.NewBookingService(driverRepo, pricingService, logger)
	userService := service.NewUserService(userRepo, logger)
	driverService := service.NewDriverService(driverRepo, logger)

	// Initialize the ride request queue and its single consumer.
	queue := dispatch.NewQueue()
	worker := dispatch.NewWorker(queue, bookingService, logger, cfg.Dispatch.PollInterval)
	rideService := service.NewRideService(matchingService, queue, logger)

	// Initialize handlers.
	userHandler := handler.NewUserHandler(userService)
	driverHandler := handler.NewDriverHandler(driverService, bookingService)
	rideHandler := handler.NewRideHandler(rideService, matchingService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		UserHandler:   userHandler,
		DriverHandler: driverHandler,
		RideHandler:   rideHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	// Create HTTP server.
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return server, worker
}
