package booking

import (
	"fmt"
	"time"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// Reason tags attached to booking errors.
const (
	ReasonStatusDecided = "status_already_decided"
	ReasonOwnItem       = "owner_booking_own_item"
	ReasonNotAvailable  = "item_not_available"
	ReasonNoAccess      = "no_access"
	ReasonNotOwner      = "not_item_owner"
)

// Booking is the aggregate root for a time-boxed reservation of an item.
type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   BookingStatus

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a WAITING booking. The window must lie strictly after now.
func NewBooking(itemID, bookerID int64, start, end, now time.Time) (*Booking, error) {
	if itemID <= 0 {
		return nil, domain.NewValidationError("item ID is required")
	}
	if bookerID <= 0 {
		return nil, domain.NewValidationError("booker ID is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, domain.NewValidationError("booking start and end are required")
	}
	if !end.After(start) {
		return nil, domain.NewValidationError("booking end must be after start")
	}
	if !start.After(now) {
		return nil, domain.NewValidationError("booking start must be in the future")
	}

	now = now.UTC()
	return &Booking{
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start.UTC(),
		end:       end.UTC(),
		status:    StatusWaiting,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, itemID, bookerID int64,
	start, end time.Time,
	status BookingStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// --- Getters ---

// ID returns the store-assigned identifier; zero until persisted.
func (b *Booking) ID() int64 { return b.id }

// ItemID returns the booked item's identifier.
func (b *Booking) ItemID() int64 { return b.itemID }

// BookerID returns the requesting user's identifier.
func (b *Booking) BookerID() int64 { return b.bookerID }

// Start returns the beginning of the booked window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the booked window.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// AssignID records the identifier generated by the store. It is a no-op once set.
func (b *Booking) AssignID(id int64) {
	if b.id == 0 {
		b.id = id
	}
}

// IsBookedBy reports whether userID requested the booking.
func (b *Booking) IsBookedBy(userID int64) bool {
	return b.bookerID == userID
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Deciding twice fails.
func (b *Booking) Decide(approved bool) error {
	target := StatusRejected
	if approved {
		target = StatusApproved
	}
	if !b.status.CanTransitionTo(target) {
		return domain.NewInvalidStateError(string(b.status), string(target)).
			WithReason(ReasonStatusDecided)
	}
	b.status = target
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}

// IsPast reports end < now.
func (b *Booking) IsPast(now time.Time) bool {
	return b.end.Before(now)
}

// IsCurrent reports start <= now <= end.
func (b *Booking) IsCurrent(now time.Time) bool {
	return !b.start.After(now) && !b.end.Before(now)
}

// IsFuture reports start > now.
func (b *Booking) IsFuture(now time.Time) bool {
	return b.start.After(now)
}

func (b *Booking) String() string {
	return fmt.Sprintf("Booking{id=%d item=%d booker=%d status=%s}", b.id, b.itemID, b.bookerID, b.status)
}
