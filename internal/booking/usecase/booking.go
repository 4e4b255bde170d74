package usecase

import (
	"context"
	"fmt"

	"github.com/msshishlin/shareit/internal/access"
	"github.com/msshishlin/shareit/internal/booking"
	repo "github.com/msshishlin/shareit/internal/booking/repository"
	"github.com/msshishlin/shareit/internal/item"
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/internal/user"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
)

// Create reserves an item. The availability flag is checked once, here;
// overlapping bookings of the same item are not rejected.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateBookingInput) (model.Booking, error) {
	booker, err := uc.users.GetUser(ctx, userRepo.GetUserOptions{ID: input.BookerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetUser: %v", err)
		return model.Booking{}, err
	}
	if booker.ID == 0 {
		return model.Booking{}, fmt.Errorf("user with id = %d: %w", input.BookerID, user.ErrUserNotFound)
	}

	booked, err := uc.items.GetItem(ctx, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetItem: %v", err)
		return model.Booking{}, err
	}
	if booked.ID == 0 {
		return model.Booking{}, fmt.Errorf("item with id = %d: %w", input.ItemID, item.ErrItemNotFound)
	}
	if !booked.Available {
		return model.Booking{}, fmt.Errorf("item with id = %d: %w", input.ItemID, booking.ErrItemUnavailable)
	}

	created, err := uc.repo.CreateBooking(ctx, repo.CreateBookingOptions{
		Start:    input.Start,
		End:      input.End,
		Status:   model.BookingStatusWaiting,
		BookerID: booker.ID,
		ItemID:   booked.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateBooking: %v", err)
		return model.Booking{}, err
	}
	return created, nil
}

// Get returns the booking to its booker or the item's owner.
func (uc *implUseCase) Get(ctx context.Context, id, viewerID int64) (model.Booking, error) {
	found, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetBooking: %v", err)
		return model.Booking{}, err
	}
	if found.ID == 0 {
		return model.Booking{}, fmt.Errorf("booking with id = %d: %w", id, booking.ErrBookingNotFound)
	}

	if err := access.RequireParticipant(viewerID, found.Booker.ID, found.Item.Owner.ID); err != nil {
		return model.Booking{}, fmt.Errorf("booking with id = %d: %w", id, err)
	}
	return found, nil
}

// ListByBooker returns the user's own bookings filtered by state,
// ordered by start time descending.
func (uc *implUseCase) ListByBooker(ctx context.Context, input booking.ListInput) ([]model.Booking, error) {
	if err := uc.requireUser(ctx, input.UserID); err != nil {
		return nil, err
	}
	return uc.list(ctx, repo.ListBookingsOptions{
		BookerID: input.UserID,
		State:    input.State,
		Now:      uc.now(),
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
}

// ListByOwner returns the bookings of all items the user owns, filtered
// by state, ordered by start time descending.
func (uc *implUseCase) ListByOwner(ctx context.Context, input booking.ListInput) ([]model.Booking, error) {
	if err := uc.requireUser(ctx, input.UserID); err != nil {
		return nil, err
	}
	return uc.list(ctx, repo.ListBookingsOptions{
		OwnerID: input.UserID,
		State:   input.State,
		Now:     uc.now(),
		Limit:   input.Limit,
		Offset:  input.Offset,
	})
}

// Approve decides a WAITING booking. Re-deciding silently rewrites the
// status; the original behaves the same way.
func (uc *implUseCase) Approve(ctx context.Context, id, ownerID int64, approved bool) (model.Booking, error) {
	found, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve GetBooking: %v", err)
		return model.Booking{}, err
	}
	if found.ID == 0 {
		return model.Booking{}, fmt.Errorf("booking with id = %d: %w", id, booking.ErrBookingNotFound)
	}

	if err := access.RequireOwner(found.Item.Owner.ID, ownerID); err != nil {
		return model.Booking{}, fmt.Errorf("approval of booking with id = %d by user with id = %d: %w", id, ownerID, err)
	}

	status := model.BookingStatusRejected
	if approved {
		status = model.BookingStatusApproved
	}

	updated, err := uc.repo.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Approve UpdateBookingStatus: %v", err)
		return model.Booking{}, err
	}
	return updated, nil
}

func (uc *implUseCase) list(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	bookings, err := uc.repo.ListBookings(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.list ListBookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

func (uc *implUseCase) requireUser(ctx context.Context, id int64) error {
	exists, err := uc.users.ExistsUser(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireUser ExistsUser: %v", err)
		return err
	}
	if !exists {
		return fmt.Errorf("user with id = %d: %w", id, user.ErrUserNotFound)
	}
	return nil
}
