package application

import (
	"context"
	"time"

	bookingDomain "github.com/shareit/service-booking/internal/domain/booking"
	itemDomain "github.com/shareit/service-booking/internal/domain/item"
)

// UserDirectory answers identity questions for the booking engine.
type UserDirectory interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

// ItemCatalog resolves items for the booking engine.
type ItemCatalog interface {
	Exists(ctx context.Context, itemID int64) (bool, error)
	FindItem(ctx context.Context, itemID int64) (*itemDomain.Item, error)
	ListOwnedItemIDs(ctx context.Context, ownerID int64) ([]int64, error)
}

// BookingEventPublisher emits booking lifecycle events. Implementations must not fail the caller.
type BookingEventPublisher interface {
	PublishCreated(ctx context.Context, bk *bookingDomain.Booking)
	PublishDecided(ctx context.Context, bk *bookingDomain.Booking)
}

// Clock returns the current instant.
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}
