package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// ErrorBody is the error payload returned to clients.
type ErrorBody struct {
	Code    string `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// Success writes a 200 response with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// Paginated writes a 200 response with items and pagination metadata.
func Paginated[T any](c *gin.Context, items []T, total int64, page, limit int) {
	result := domain.NewPaginatedResult(items, total, page, limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Items,
		"pagination": gin.H{
			"total":       result.Total,
			"page":        result.Page,
			"limit":       result.Limit,
			"total_pages": result.TotalPages,
		},
	})
}

// BadRequest writes a 400 validation response.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   ErrorBody{Code: string(domain.KindValidation), Message: msg},
	})
}

// Error maps err to an HTTP status and writes it.
//
// Forbidden maps to 404: an actor unrelated to a booking or item is told the
// resource does not exist.
func Error(c *gin.Context, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   ErrorBody{Code: "INTERNAL", Message: "internal server error"},
		})
		return
	}

	c.AbortWithStatusJSON(StatusFor(appErr.Kind), gin.H{
		"success": false,
		"error": ErrorBody{
			Code:    string(appErr.Kind),
			Reason:  appErr.Reason,
			Message: appErr.Message,
		},
	})
}

// StatusFor returns the HTTP status for an error kind.
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindNotFound, domain.KindForbidden:
		return http.StatusNotFound
	case domain.KindValidation, domain.KindInvalidState:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
