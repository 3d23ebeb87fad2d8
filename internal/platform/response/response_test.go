package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/service-booking/internal/platform/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestError_MapsKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.NewNotFoundError("Booking", "1"), http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", domain.NewForbiddenError("no access"), http.StatusNotFound, "FORBIDDEN"},
		{"validation", domain.NewValidationError("bad"), http.StatusBadRequest, "VALIDATION"},
		{"invalid state", domain.NewInvalidStateError("APPROVED", "REJECTED"), http.StatusBadRequest, "INVALID_STATE"},
		{"conflict", domain.NewConflictError("dup"), http.StatusConflict, "CONFLICT"},
		{"internal", errors.New("db down"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Error(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body struct {
				Success bool      `json:"success"`
				Error   ErrorBody `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestError_CarriesReason(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, domain.NewForbiddenError("owner cannot book own item").WithReason("owner_booking_own_item"))

	assert.Contains(t, w.Body.String(), `"reason":"owner_booking_own_item"`)
}
