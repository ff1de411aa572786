package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService  *service.DriverService
	bookingService *service.BookingService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService, bookingService *service.BookingService) *DriverHandler {
	return &DriverHandler{
		driverService:  driverService,
		bookingService: bookingService,
	}
}

// RegisterDriverRequest is the HTTP request body for driver registration.
type RegisterDriverRequest struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Age           int    `json:"age"`
	Vehicle       string `json:"vehicle"`
	VehicleNumber string `json:"vehicle_number"`
	X             int    `json:"x"`
	Y             int    `json:"y"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	Name          string    `json:"name"`
	Gender        string    `json:"gender"`
	Age           int       `json:"age"`
	Vehicle       string    `json:"vehicle"`
	VehicleNumber string    `json:"vehicle_number"`
	Location      geo.Point `json:"location"`
	Available     bool      `json:"available"`
	Earnings      int       `json:"earnings"`
}

// StatusRequest is the HTTP request body for an availability change.
type StatusRequest struct {
	Available bool `json:"available"`
}

// EarningResponse is one row of the earnings report.
type EarningResponse struct {
	Name     string `json:"name"`
	Earnings int    `json:"earnings"`
}

// Register handles POST /v1/drivers/register
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverService.Register(c.Request.Context(), service.RegisterDriverRequest{
		Name:          req.Name,
		Gender:        req.Gender,
		Age:           req.Age,
		Vehicle:       req.Vehicle,
		VehicleNumber: req.VehicleNumber,
		Location:      geo.Point{X: req.X, Y: req.Y},
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toDriverResponse(driver))
}

// UpdateLocation handles POST /v1/drivers/:name/location
func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.driverService.UpdateLocation(c.Request.Context(), c.Param("name"), geo.Point{X: req.X, Y: req.Y})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeStatus handles POST /v1/drivers/:name/status
func (h *DriverHandler) ChangeStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.driverService.SetAvailability(c.Request.Context(), c.Param("name"), req.Available)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAll handles GET /v1/drivers
func (h *DriverHandler) GetAll(c *gin.Context) {
	drivers, err := h.driverService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, toDriverResponse(d))
	}

	c.JSON(http.StatusOK, response)
}

// Earnings handles GET /v1/drivers/earnings
func (h *DriverHandler) Earnings(c *gin.Context) {
	report, err := h.bookingService.EarningsReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]EarningResponse, 0, len(report))
	for _, row := range report {
		response = append(response, EarningResponse{Name: row.Name, Earnings: row.Earnings})
	}

	c.JSON(http.StatusOK, response)
}

func toDriverResponse(d *domain.Driver) DriverResponse {
	return DriverResponse{
		Name:          d.Name,
		Gender:        d.Gender,
		Age:           d.Age,
		Vehicle:       d.Vehicle,
		VehicleNumber: d.VehicleNumber,
		Location:      d.Location,
		Available:     d.Available,
		Earnings:      d.Earnings,
	}
}
