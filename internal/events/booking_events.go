package events

import "time"

// Booking lifecycle event types.
const (
	BookingCreated  = "shareit.booking.created"
	BookingApproved = "shareit.booking.approved"
	BookingRejected = "shareit.booking.rejected"
)

// EventSource identifies this service in the CloudEvents source attribute.
const EventSource = "service-booking"

// BookingEvent is the payload of every booking lifecycle event.
type BookingEvent struct {
	BookingID  int64     `json:"booking_id"`
	ItemID     int64     `json:"item_id"`
	BookerID   int64     `json:"booker_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
