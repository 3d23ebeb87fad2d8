package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit/service-booking/internal/application"
	"github.com/shareit/service-booking/internal/platform/response"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service UserUseCases
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service UserUseCases) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterRoutes registers user routes.
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req application.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateUser handles PATCH /users/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req application.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
