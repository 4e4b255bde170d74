package model

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus is the approval state of a booking.
type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
	// BookingStatusCanceled is reserved; no operation produces it yet.
	BookingStatusCanceled BookingStatus = "CANCELED"
)

// Booking is a time-bounded reservation of an item, subject to owner
// approval. Created in WAITING; the item's owner moves it to APPROVED
// or REJECTED.
type Booking struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status BookingStatus
	Booker User
	Item   Item
}

// BookingSearchState selects which bookings a listing returns.
type BookingSearchState string

const (
	SearchStateAll      BookingSearchState = "ALL"
	SearchStateCurrent  BookingSearchState = "CURRENT"
	SearchStatePast     BookingSearchState = "PAST"
	SearchStateFuture   BookingSearchState = "FUTURE"
	SearchStateWaiting  BookingSearchState = "WAITING"
	SearchStateRejected BookingSearchState = "REJECTED"
)

// ParseSearchState parses a state query value case-insensitively.
// Unknown values are a client error and must never reach domain logic.
func ParseSearchState(s string) (BookingSearchState, error) {
	switch BookingSearchState(strings.ToUpper(s)) {
	case SearchStateAll:
		return SearchStateAll, nil
	case SearchStateCurrent:
		return SearchStateCurrent, nil
	case SearchStatePast:
		return SearchStatePast, nil
	case SearchStateFuture:
		return SearchStateFuture, nil
	case SearchStateWaiting:
		return SearchStateWaiting, nil
	case SearchStateRejected:
		return SearchStateRejected, nil
	default:
		return "", fmt.Errorf("unknown state: %s", s)
	}
}
