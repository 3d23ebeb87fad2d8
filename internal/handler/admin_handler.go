package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	"github.com/shareit/service-booking/internal/platform/response"
)

const (
	defaultAdminLimit = 20
	maxAdminLimit     = 100
)

// AdminBookingHandler serves the internal booking dashboard. It trusts its
// network boundary and does not require a caller identity.
type AdminBookingHandler struct {
	service AdminUseCases
}

// NewAdminBookingHandler creates a new AdminBookingHandler.
func NewAdminBookingHandler(service AdminUseCases) *AdminBookingHandler {
	return &AdminBookingHandler{service: service}
}

// RegisterRoutes registers admin booking routes.
func (h *AdminBookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.GET("/bookings", h.ListBookings)
		admin.GET("/stats/bookings", h.BookingStats)
	}
}

// ListBookings handles GET /admin/bookings?status=&page=&limit=.
// Out-of-range page and limit values fall back to defaults.
func (h *AdminBookingHandler) ListBookings(c *gin.Context) {
	var status bookingDomain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := bookingDomain.ParseBookingStatus(strings.ToUpper(raw))
		if err != nil {
			response.BadRequest(c, "Unknown status: "+raw)
			return
		}
		status = parsed
	}

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := queryInt(c, "limit", defaultAdminLimit)
	if limit < 1 || limit > maxAdminLimit {
		limit = defaultAdminLimit
	}

	bookings, total, err := h.service.ListAllBookings(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, bookings, total, page, limit)
}

// BookingStats handles GET /admin/stats/bookings.
func (h *AdminBookingHandler) BookingStats(c *gin.Context) {
	stats, err := h.service.GetBookingStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
