package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit/service-booking/internal/platform/domain"
	"github.com/shareit/service-booking/internal/platform/response"
)

const (
	defaultFrom = "0"
	defaultSize = "10"
)

// parseID reads a positive int64 path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// parsePageRequest reads from/size query parameters.
func parsePageRequest(c *gin.Context) (domain.PageRequest, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", defaultFrom))
	if err != nil {
		response.BadRequest(c, "from must be an integer")
		return domain.PageRequest{}, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", defaultSize))
	if err != nil {
		response.BadRequest(c, "size must be an integer")
		return domain.PageRequest{}, false
	}

	page, err := domain.NewPageRequest(from, size)
	if err != nil {
		response.Error(c, err)
		return domain.PageRequest{}, false
	}
	return page, true
}
