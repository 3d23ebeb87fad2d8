package domain

// PageRequest is an offset window expressed as from/size.
//
// The window is resolved to a page index by truncating division, so
// from=5,size=10 selects offsets 0..9. Existing clients rely on this.
type PageRequest struct {
	From int
	Size int
}

// NewPageRequest validates and builds a PageRequest.
func NewPageRequest(from, size int) (PageRequest, error) {
	if from < 0 {
		return PageRequest{}, NewValidationError("from must not be negative")
	}
	if size <= 0 {
		return PageRequest{}, NewValidationError("size must be positive")
	}
	return PageRequest{From: from, Size: size}, nil
}

// Page returns the zero-based page index.
func (p PageRequest) Page() int {
	return p.From / p.Size
}

// Offset returns the first row offset of the page.
func (p PageRequest) Offset() int {
	return p.Page() * p.Size
}

// Limit returns the page size.
func (p PageRequest) Limit() int {
	return p.Size
}

// PaginatedResult wraps a page of items with its totals.
type PaginatedResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginatedResult builds a PaginatedResult for a 1-based page.
func NewPaginatedResult[T any](items []T, total int64, page, limit int) PaginatedResult[T] {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginatedResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
