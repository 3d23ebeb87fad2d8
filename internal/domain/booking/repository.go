package booking

import (
	"context"
	"time"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// BookingRepository defines the persistence contract for booking aggregates.
//
// Every list query is ordered by start descending and windowed by page.
type BookingRepository interface {
	// FindByID retrieves a booking by its unique identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// Save inserts a new booking and assigns its identifier.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error

	FindByBooker(ctx context.Context, bookerID int64, page domain.PageRequest) ([]*Booking, error)
	FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, page domain.PageRequest) ([]*Booking, error)
	FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, page domain.PageRequest) ([]*Booking, error)
	FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, page domain.PageRequest) ([]*Booking, error)
	FindByBookerAndStatus(ctx context.Context, bookerID int64, status BookingStatus, page domain.PageRequest) ([]*Booking, error)

	// Owner queries join through the item's owner.
	FindByOwner(ctx context.Context, ownerID int64, page domain.PageRequest) ([]*Booking, error)
	FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, page domain.PageRequest) ([]*Booking, error)
	FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, page domain.PageRequest) ([]*Booking, error)
	FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, page domain.PageRequest) ([]*Booking, error)

	// FindFinishedByBookerAndItem returns the APPROVED booking of itemID by bookerID
	// with the earliest end before now, or a not-found error.
	FindFinishedByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) (*Booking, error)

	// FindLastForItem returns the latest APPROVED booking that started at or before now, or nil.
	FindLastForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// FindNextForItem returns the earliest APPROVED booking starting after now, or nil.
	FindNextForItem(ctx context.Context, itemID int64, now time.Time) (*Booking, error)

	// ListAll retrieves bookings newest first with 1-based pagination (admin).
	// An empty status matches every booking.
	ListAll(ctx context.Context, status BookingStatus, page, limit int) ([]*Booking, int64, error)

	// CountByStatus returns booking counts grouped by status (admin).
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
