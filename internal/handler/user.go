package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/geo"
	"cab/internal/service"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRequest is the HTTP request body for user registration.
type RegisterUserRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	Name     string    `json:"name"`
	Gender   string    `json:"gender"`
	Age      int       `json:"age"`
	Location geo.Point `json:"location"`
}

// Register handles POST /v1/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), service.RegisterUserRequest{
		Name:   req.Name,
		Gender: req.Gender,
		Age:    req.Age,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, UserResponse{
		Name:     user.Name,
		Gender:   user.Gender,
		Age:      user.Age,
		Location: user.Location,
	})
}

// UpdateLocationRequest is the HTTP request body for a location update.
type UpdateLocationRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// UpdateLocation handles POST /v1/users/:name/location
func (h *UserHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	err := h.userService.UpdateLocation(c.Request.Context(), c.Param("name"), geo.Point{X: req.X, Y: req.Y})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAll handles GET /v1/users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, UserResponse{
			Name:     u.Name,
			Gender:   u.Gender,
			Age:      u.Age,
			Location: u.Location,
		})
	}

	c.JSON(http.StatusOK, response)
}
