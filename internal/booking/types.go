package booking

import (
	"time"

	"github.com/msshishlin/shareit/internal/model"
)

// CreateBookingInput carries a reservation request. Status is always set
// to WAITING by the usecase.
type CreateBookingInput struct {
	BookerID int64
	ItemID   int64
	Start    time.Time
	End      time.Time
}

// ListInput selects bookings for one side of the rental (booker or item
// owner), filtered by search state.
type ListInput struct {
	UserID int64
	State  model.BookingSearchState
	Limit  int
	Offset int
}
