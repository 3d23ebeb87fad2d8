package booking

import "fmt"

// BookingStatus is the persisted lifecycle value of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

// validTransitions defines the state machine for booking status transitions.
// CANCELED is a storable value with no inbound transition.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusWaiting:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
	StatusCanceled: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
