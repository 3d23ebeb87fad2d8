package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create booking: %w", NewNotFoundError("Item", "5"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsForbidden(err))
	assert.Equal(t, "Item with id 5 not found", errors.Unwrap(err).Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.Equal(t, "", ReasonOf(errors.New("boom")))
}

func TestWithReason_DoesNotMutateOriginal(t *testing.T) {
	base := NewForbiddenError("no access")
	tagged := base.WithReason("own_item")

	assert.Equal(t, "", base.Reason)
	assert.Equal(t, "own_item", ReasonOf(tagged))
	assert.True(t, IsForbidden(tagged))
}

func TestPageRequest(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		page       int
		offset     int
	}{
		{"first page", 0, 10, 0, 0},
		{"offset inside first page", 5, 10, 0, 0},
		{"second page", 10, 10, 1, 10},
		{"uneven", 7, 3, 2, 6},
		{"far beyond data", 99, 999, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPageRequest(tt.from, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.page, p.Page())
			assert.Equal(t, tt.offset, p.Offset())
			assert.Equal(t, tt.size, p.Limit())
		})
	}
}

func TestPageRequest_Invalid(t *testing.T) {
	_, err := NewPageRequest(-1, 10)
	assert.True(t, IsValidation(err))

	_, err = NewPageRequest(0, 0)
	assert.True(t, IsValidation(err))
}

func TestNewPaginatedResult_TotalPages(t *testing.T) {
	res := NewPaginatedResult([]int{1, 2}, 21, 1, 10)
	assert.Equal(t, 3, res.TotalPages)
}
