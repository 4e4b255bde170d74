package repository

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

// Repository defines all data access methods for the Booking entity.
// Bookings come back with their booker and item (including the item's
// owner) resolved. Get returns the zero value (ID == 0) when not found.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	// ListBookings returns bookings matching the options, ordered by
	// start time descending.
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error)
}
