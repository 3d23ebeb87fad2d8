package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shareit/service-booking/internal/application"
	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	hmocks "github.com/shareit/service-booking/internal/handler/mocks"
	"github.com/shareit/service-booking/internal/platform/domain"
	"github.com/shareit/service-booking/internal/platform/middleware"
)

var handlerNow = time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

type testServices struct {
	bookings *hmocks.MockBookingUseCases
	admin    *hmocks.MockAdminUseCases
	users    *hmocks.MockUserUseCases
	items    *hmocks.MockItemUseCases
	comments *hmocks.MockCommentUseCases
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(t *testing.T) (*testServices, http.Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServices{
		bookings: hmocks.NewMockBookingUseCases(t),
		admin:    hmocks.NewMockAdminUseCases(t),
		users:    hmocks.NewMockUserUseCases(t),
		items:    hmocks.NewMockItemUseCases(t),
		comments: hmocks.NewMockCommentUseCases(t),
	}

	bookingHandler := NewBookingHandler(s.bookings)
	bookingHandler.now = func() time.Time { return handlerNow }

	r := gin.New()
	root := r.Group("")
	bookingHandler.RegisterRoutes(root)
	NewAdminBookingHandler(s.admin).RegisterRoutes(root)
	NewUserHandler(s.users).RegisterRoutes(root)
	NewItemHandler(s.items, s.comments).RegisterRoutes(root)

	return s, r
}

func doRequest(t *testing.T, h http.Handler, method, path string, userID string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// --- Bookings ---

func TestCreateBooking_Success(t *testing.T) {
	s, r := setupRouter(t)

	start := handlerNow.Add(24 * time.Hour)
	end := handlerNow.Add(72 * time.Hour)
	s.bookings.EXPECT().CreateBooking(mock.Anything, int64(2), mock.MatchedBy(func(req application.CreateBookingRequest) bool {
		return req.ItemID == 5 && req.Start.Equal(start) && req.End.Equal(end)
	})).Return(&application.BookingDTO{ID: 1, Status: "WAITING", Start: start, End: end}, nil)

	w, env := doRequest(t, r, http.MethodPost, "/bookings", "2", gin.H{
		"itemId": 5,
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var dto application.BookingDTO
	require.NoError(t, json.Unmarshal(env.Data, &dto))
	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "WAITING", dto.Status)
}

func TestCreateBooking_MissingUserHeader(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/bookings", "", gin.H{"itemId": 5})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", env.Error.Code)
}

func TestCreateBooking_FacadeValidation(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"missing item", gin.H{
			"start": handlerNow.Add(time.Hour).Format(time.RFC3339),
			"end":   handlerNow.Add(2 * time.Hour).Format(time.RFC3339),
		}},
		{"start in past", gin.H{
			"itemId": 5,
			"start":  handlerNow.Add(-time.Hour).Format(time.RFC3339),
			"end":    handlerNow.Add(2 * time.Hour).Format(time.RFC3339),
		}},
		{"end before start", gin.H{
			"itemId": 5,
			"start":  handlerNow.Add(2 * time.Hour).Format(time.RFC3339),
			"end":    handlerNow.Add(time.Hour).Format(time.RFC3339),
		}},
		{"negative item", gin.H{
			"itemId": -1,
			"start":  handlerNow.Add(time.Hour).Format(time.RFC3339),
			"end":    handlerNow.Add(2 * time.Hour).Format(time.RFC3339),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupRouter(t)

			w, _ := doRequest(t, r, http.MethodPost, "/bookings", "2", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateBooking_OwnItemMapsToNotFound(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().CreateBooking(mock.Anything, int64(1), mock.Anything).
		Return(nil, domain.NewForbiddenError("owner cannot book own item").WithReason(bookingDomain.ReasonOwnItem))

	w, env := doRequest(t, r, http.MethodPost, "/bookings", "1", gin.H{
		"itemId": 5,
		"start":  handlerNow.Add(time.Hour).Format(time.RFC3339),
		"end":    handlerNow.Add(2 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	assert.Equal(t, bookingDomain.ReasonOwnItem, env.Error.Reason)
}

func TestApproveBooking(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().ApproveBooking(mock.Anything, int64(1), int64(1), true).
		Return(&application.BookingDTO{ID: 1, Status: "APPROVED"}, nil)

	w, env := doRequest(t, r, http.MethodPatch, "/bookings/1?approved=true", "1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "APPROVED")
}

func TestApproveBooking_AlreadyDecided(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().ApproveBooking(mock.Anything, int64(1), int64(1), false).
		Return(nil, domain.NewInvalidStateError("APPROVED", "REJECTED").WithReason(bookingDomain.ReasonStatusDecided))

	w, env := doRequest(t, r, http.MethodPatch, "/bookings/1?approved=false", "1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestApproveBooking_BadFlag(t *testing.T) {
	_, r := setupRouter(t)

	w, _ := doRequest(t, r, http.MethodPatch, "/bookings/1?approved=maybe", "1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPatch, "/bookings/abc?approved=true", "1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBooking_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().GetBooking(mock.Anything, int64(9), int64(2)).
		Return(nil, domain.NewNotFoundError("Booking", "9"))

	w, env := doRequest(t, r, http.MethodGet, "/bookings/9", "2", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestListUserBookings_DefaultsAndState(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().GetUserBookings(mock.Anything, int64(2), bookingDomain.StateAll, domain.PageRequest{From: 0, Size: 10}).
		Return([]application.BookingDTO{{ID: 1}}, nil)
	s.bookings.EXPECT().GetUserBookings(mock.Anything, int64(2), bookingDomain.StateFuture, domain.PageRequest{From: 5, Size: 10}).
		Return([]application.BookingDTO{}, nil)

	w, _ := doRequest(t, r, http.MethodGet, "/bookings", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := doRequest(t, r, http.MethodGet, "/bookings?state=future&from=5&size=10", "2", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestListBookings_UnknownState(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/bookings?state=UNSUPPORTED_STATUS", "2", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", env.Error.Message)
}

func TestListBookings_InvalidPage(t *testing.T) {
	_, r := setupRouter(t)

	for _, q := range []string{"from=-1", "size=0", "size=-5", "from=x"} {
		w, _ := doRequest(t, r, http.MethodGet, "/bookings/owner?"+q, "1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestListOwnerBookings(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().GetOwnerBookings(mock.Anything, int64(1), bookingDomain.StateWaiting, domain.PageRequest{From: 99, Size: 999}).
		Return([]application.BookingDTO{}, nil)

	w, _ := doRequest(t, r, http.MethodGet, "/bookings/owner?state=WAITING&from=99&size=999", "1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Admin ---

func TestAdminBookingStats(t *testing.T) {
	s, r := setupRouter(t)

	s.admin.EXPECT().GetBookingStats(mock.Anything).
		Return(&application.BookingStatsDTO{TotalBookings: 3, ByStatus: map[string]int64{"WAITING": 3}}, nil)

	w, env := doRequest(t, r, http.MethodGet, "/admin/stats/bookings", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"total_bookings":3`)
}

func TestAdminListBookings_ClampsLimit(t *testing.T) {
	s, r := setupRouter(t)

	s.admin.EXPECT().ListAllBookings(mock.Anything, bookingDomain.BookingStatus(""), 1, 20).
		Return([]application.BookingDTO{}, int64(0), nil)

	w, _ := doRequest(t, r, http.MethodGet, "/admin/bookings?page=0&limit=500", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminListBookings_StatusFilter(t *testing.T) {
	s, r := setupRouter(t)

	s.admin.EXPECT().ListAllBookings(mock.Anything, bookingDomain.StatusRejected, 2, 5).
		Return([]application.BookingDTO{{ID: 9, Status: "REJECTED"}}, int64(6), nil)

	w, env := doRequest(t, r, http.MethodGet, "/admin/bookings?status=rejected&page=2&limit=5", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
}

func TestAdminListBookings_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/admin/bookings?status=DONE", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unknown status: DONE", env.Error.Message)
}

// --- Users ---

func TestCreateUser_InvalidEmail(t *testing.T) {
	_, r := setupRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/users", "", gin.H{"name": "Alice", "email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().CreateUser(mock.Anything, application.CreateUserRequest{Name: "Alice", Email: "alice@example.com"}).
		Return(nil, domain.NewConflictError("email already registered"))

	w, env := doRequest(t, r, http.MethodPost, "/users", "", gin.H{"name": "Alice", "email": "alice@example.com"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestDeleteUser(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().DeleteUser(mock.Anything, int64(3)).Return(nil)

	w, _ := doRequest(t, r, http.MethodDelete, "/users/3", "", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Items ---

func TestSearchItems_NoUserHeaderRequired(t *testing.T) {
	s, r := setupRouter(t)

	s.items.EXPECT().SearchItems(mock.Anything, "drill", domain.PageRequest{From: 0, Size: 10}).
		Return([]*application.ItemDTO{{ID: 5, Name: "Drill"}}, nil)

	w, env := doRequest(t, r, http.MethodGet, "/items/search?text=drill", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Drill")
}

func TestCreateItem_RequiresAvailable(t *testing.T) {
	_, r := setupRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/items", "1", gin.H{"name": "Drill", "description": "Cordless"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddComment(t *testing.T) {
	s, r := setupRouter(t)

	s.comments.EXPECT().AddComment(mock.Anything, int64(5), int64(2), application.AddCommentRequest{Text: "Great"}).
		Return(&application.CommentDTO{ID: 1, Text: "Great", AuthorName: "Bob"}, nil)

	w, env := doRequest(t, r, http.MethodPost, "/items/5/comment", "2", gin.H{"text": "Great"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data), "Bob")
}
