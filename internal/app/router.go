package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cab/internal/handler"
	"cab/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler   *handler.UserHandler
	DriverHandler *handler.DriverHandler
	RideHandler   *handler.RideHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// User routes.
		users := v1.Group("/users")
		{
			users.POST("/register", deps.UserHandler.Register)
			users.GET("", deps.UserHandler.GetAll)
			users.POST("/:name/location", deps.UserHandler.UpdateLocation)
		}

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.POST("/register", deps.DriverHandler.Register)
			drivers.GET("", deps.DriverHandler.GetAll)
			drivers.GET("/earnings", deps.DriverHandler.Earnings)
			drivers.POST("/:name/location", deps.DriverHandler.UpdateLocation)
			drivers.POST("/:name/status", deps.DriverHandler.ChangeStatus)
		}

		// Ride routes.
		rides := v1.Group("/rides")
		{
			rides.POST("/find", deps.RideHandler.FindRide)
			rides.POST("/request", deps.RideHandler.RequestRide)
			rides.GET("/requests/:id", deps.RideHandler.GetRequest)
		}
	}

	return router
}
