package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/geo"
	"cab/internal/service"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService     *service.RideService
	matchingService service.MatchingServiceInterface
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService, matchingService service.MatchingServiceInterface) *RideHandler {
	return &RideHandler{
		rideService:     rideService,
		matchingService: matchingService,
	}
}

// FindRideRequest is the HTTP request body for finding or requesting a ride.
type FindRideRequest struct {
	User        string    `json:"user"`
	Source      geo.Point `json:"source"`
	Destination geo.Point `json:"destination"`
}

// FindRideResponse is the HTTP response listing candidate drivers.
type FindRideResponse struct {
	Candidates []DriverResponse `json:"candidates"`
}

// RequestRideResponse is the HTTP response for an accepted ride request.
type RequestRideResponse struct {
	RequestID string `json:"request_id"`
	Driver    string `json:"driver"`
	Status    string `json:"status"`
}

// RideStatusResponse is the HTTP response for a ride request status query.
type RideStatusResponse struct {
	RequestID string `json:"request_id"`
	Driver    string `json:"driver"`
	Status    string `json:"status"`
	Fare      int    `json:"fare,omitempty"`
}

// FindRide handles POST /v1/rides/find
func (h *RideHandler) FindRide(c *gin.Context) {
	var req FindRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	candidates, err := h.matchingService.FindRide(c.Request.Context(), req.User, req.Source, req.Destination)
	if err != nil {
		respondError(c, err)
		return
	}

	response := FindRideResponse{Candidates: make([]DriverResponse, 0, len(candidates))}
	for _, d := range candidates {
		response.Candidates = append(response.Candidates, toDriverResponse(d))
	}

	c.JSON(http.StatusOK, response)
}

// RequestRide handles POST /v1/rides/request
func (h *RideHandler) RequestRide(c *gin.Context) {
	var req FindRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ticket, err := h.rideService.RequestRide(c.Request.Context(), req.User, req.Source, req.Destination)
	if err != nil {
		respondError(c, err)
		return
	}

	// Processing is asynchronous; the caller polls the status endpoint
	// or re-queries driver state for the outcome.
	respondJSON(c, http.StatusAccepted, RequestRideResponse{
		RequestID: ticket.RequestID,
		Driver:    ticket.DriverName,
		Status:    string(domain.RideStatusPending),
	})
}

// GetRequest handles GET /v1/rides/requests/:id
func (h *RideHandler) GetRequest(c *gin.Context) {
	ticket, err := h.rideService.GetTicket(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := RideStatusResponse{
		RequestID: ticket.RequestID,
		Driver:    ticket.DriverName,
		Status:    string(domain.RideStatusPending),
	}
	if outcome, done := ticket.Outcome(); done {
		response.Status = string(outcome.Status)
		response.Fare = outcome.Fare
	}

	c.JSON(http.StatusOK, response)
}
