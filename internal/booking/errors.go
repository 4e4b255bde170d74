package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrItemUnavailable rejects bookings of items whose availability
	// flag is off at creation time.
	ErrItemUnavailable = errors.New("item is unavailable for booking")
)
