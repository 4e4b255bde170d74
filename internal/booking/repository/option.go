package repository

import (
	"time"

	"github.com/msshishlin/shareit/internal/model"
)

// CreateBookingOptions holds parameters for inserting a new booking.
type CreateBookingOptions struct {
	Start    time.Time
	End      time.Time
	Status   model.BookingStatus
	BookerID int64
	ItemID   int64
}

// ListBookingsOptions holds filter and pagination parameters for listing
// bookings. All non-zero fields are applied as AND conditions.
type ListBookingsOptions struct {
	BookerID int64
	// OwnerID filters by the owner of the booked item.
	OwnerID int64
	ItemID  int64
	// ItemIDs filters by a set of items (enrichment of an owner's list).
	ItemIDs []int64
	// State applies the time-relative or status filter; empty and ALL
	// mean no filter. Now is the reference instant for PAST/FUTURE/
	// CURRENT and must be set when State needs it.
	State model.BookingSearchState
	Now   time.Time

	Limit  int
	Offset int
}
