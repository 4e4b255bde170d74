package booking

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (model.Booking, error)
	// Get returns the booking to its booker or the item's owner only.
	Get(ctx context.Context, id, viewerID int64) (model.Booking, error)
	ListByBooker(ctx context.Context, input ListInput) ([]model.Booking, error)
	ListByOwner(ctx context.Context, input ListInput) ([]model.Booking, error)
	// Approve decides a booking: APPROVED when approved, REJECTED
	// otherwise. Only the item's owner may decide.
	Approve(ctx context.Context, id, ownerID int64, approved bool) (model.Booking, error)
}
