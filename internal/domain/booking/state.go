package booking

import (
	"strings"
	"time"

	"github.com/shareit/service-booking/internal/platform/domain"
)

// State is a derived query classification; it is never persisted.
type State string

const (
	StateAll      State = "ALL"
	StatePast     State = "PAST"
	StateCurrent  State = "CURRENT"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ReasonUnknownState tags errors for unrecognized state filters.
const ReasonUnknownState = "unknown_state"

// ParseState parses a state filter. An empty value means ALL.
func ParseState(s string) (State, error) {
	if s == "" {
		return StateAll, nil
	}
	switch st := State(strings.ToUpper(s)); st {
	case StateAll, StatePast, StateCurrent, StateFuture, StateWaiting, StateRejected:
		return st, nil
	}
	return "", domain.NewValidationError("Unknown state: " + s).WithReason(ReasonUnknownState)
}

// StatusFilter returns the persisted status a state filters on, if any.
func (s State) StatusFilter() (BookingStatus, bool) {
	switch s {
	case StateWaiting:
		return StatusWaiting, true
	case StateRejected:
		return StatusRejected, true
	}
	return "", false
}

// Matches reports whether b belongs to the bucket at instant now.
func (s State) Matches(b *Booking, now time.Time) bool {
	switch s {
	case StateAll:
		return true
	case StatePast:
		return b.IsPast(now)
	case StateCurrent:
		return b.IsCurrent(now)
	case StateFuture:
		return b.IsFuture(now)
	case StateWaiting:
		return b.Status() == StatusWaiting
	case StateRejected:
		return b.Status() == StatusRejected
	}
	return false
}

func (s State) String() string {
	return string(s)
}
