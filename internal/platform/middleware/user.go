package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit/service-booking/internal/platform/response"
)

// UserIDHeader carries the trusted caller identity set by the edge.
const UserIDHeader = "X-Sharer-User-Id"

const userIDKey = "userID"

// RequireUserID parses X-Sharer-User-Id and rejects requests without a positive id.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			response.BadRequest(c, "missing "+UserIDHeader+" header")
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, UserIDHeader+" must be a positive integer")
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// GetUserID returns the caller id stored by RequireUserID.
func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
