package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shareit/service-booking/internal/application"
	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/platform/domain"
	"github.com/shareit/service-booking/internal/platform/middleware"
	"github.com/shareit/service-booking/internal/platform/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service BookingUseCases
	now     func() time.Time
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service BookingUseCases) *BookingHandler {
	return &BookingHandler{service: service, now: time.Now}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.RequireUserID())
	{
		bookings.POST("", h.CreateBooking)
		bookings.PATCH("/:id", h.ApproveBooking)
		bookings.GET("/owner", h.ListOwnerBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("", h.ListUserBookings)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	now := h.now()
	if !req.Start.After(now) || !req.End.After(now) {
		response.BadRequest(c, "booking start and end must be in the future")
		return
	}
	if !req.Start.Before(req.End) {
		response.BadRequest(c, "booking start must be before end")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ApproveBooking handles PATCH /bookings/:id?approved=true|false.
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.service.ApproveBooking(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	bookingID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListUserBookings handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	h.listBookings(c, h.service.GetUserBookings)
}

// ListOwnerBookings handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.listBookings(c, h.service.GetOwnerBookings)
}

type bookingQuery func(ctx context.Context, userID int64, state bookingDomain.State, page domain.PageRequest) ([]application.BookingDTO, error)

func (h *BookingHandler) listBookings(c *gin.Context, query bookingQuery) {
	userID, _ := middleware.GetUserID(c)

	state, err := bookingDomain.ParseState(c.DefaultQuery("state", string(bookingDomain.StateAll)))
	if err != nil {
		response.Error(c, err)
		return
	}
	page, ok := parsePageRequest(c)
	if !ok {
		return
	}

	result, err := query(c.Request.Context(), userID, state, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
