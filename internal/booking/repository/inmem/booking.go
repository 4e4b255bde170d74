// Package inmem is the map-backed booking store used by tests and by
// the server when no database is configured. References are resolved
// through the injected user and item stores, mirroring the relational
// joins.
package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/booking/repository"
	itemRepo "github.com/msshishlin/shareit/internal/item/repository"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
)

type implRepository struct {
	mu       sync.Mutex
	bookings map[int64]model.Booking // Booker/Item hold ids only; resolved on read
	nextID   int64

	users userRepo.Repository
	items itemRepo.Repository
}

// New creates an empty in-memory booking Repository backed by the given
// user and item stores.
func New(users userRepo.Repository, items itemRepo.Repository) repo.Repository {
	return &implRepository{
		bookings: make(map[int64]model.Booking),
		nextID:   1,
		users:    users,
		items:    items,
	}
}

func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (model.Booking, error) {
	r.mu.Lock()
	booking := model.Booking{
		ID:     r.nextID,
		Start:  opt.Start,
		End:    opt.End,
		Status: opt.Status,
		Booker: model.User{ID: opt.BookerID},
		Item:   model.Item{ID: opt.ItemID},
	}
	r.bookings[booking.ID] = booking
	r.nextID++
	r.mu.Unlock()

	return r.resolve(ctx, booking)
}

func (r *implRepository) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	r.mu.Lock()
	booking, ok := r.bookings[id]
	r.mu.Unlock()

	if !ok {
		return model.Booking{}, nil
	}
	return r.resolve(ctx, booking)
}

func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]model.Booking, error) {
	r.mu.Lock()
	snapshot := make([]model.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		snapshot = append(snapshot, b)
	}
	r.mu.Unlock()

	var matched []model.Booking
	for _, b := range snapshot {
		resolved, err := r.resolve(ctx, b)
		if err != nil {
			return nil, err
		}
		if matches(resolved, opt) {
			matched = append(matched, resolved)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Start.After(matched[j].Start)
	})

	if opt.Offset > 0 {
		if opt.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[opt.Offset:]
	}
	if opt.Limit > 0 && opt.Limit < len(matched) {
		matched = matched[:opt.Limit]
	}
	return matched, nil
}

func (r *implRepository) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	r.mu.Lock()
	booking, ok := r.bookings[id]
	if ok {
		booking.Status = status
		r.bookings[id] = booking
	}
	r.mu.Unlock()

	if !ok {
		return model.Booking{}, nil
	}
	return r.resolve(ctx, booking)
}

// resolve fills in the booker and item entities from the backing stores.
func (r *implRepository) resolve(ctx context.Context, b model.Booking) (model.Booking, error) {
	booker, err := r.users.GetUser(ctx, userRepo.GetUserOptions{ID: b.Booker.ID})
	if err != nil {
		return model.Booking{}, err
	}
	item, err := r.items.GetItem(ctx, b.Item.ID)
	if err != nil {
		return model.Booking{}, err
	}
	b.Booker = booker
	b.Item = item
	return b, nil
}

func matches(b model.Booking, opt repo.ListBookingsOptions) bool {
	if opt.BookerID != 0 && b.Booker.ID != opt.BookerID {
		return false
	}
	if opt.OwnerID != 0 && b.Item.Owner.ID != opt.OwnerID {
		return false
	}
	if opt.ItemID != 0 && b.Item.ID != opt.ItemID {
		return false
	}
	if len(opt.ItemIDs) > 0 {
		found := false
		for _, id := range opt.ItemIDs {
			if b.Item.ID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch opt.State {
	case model.SearchStatePast:
		return b.End.Before(opt.Now)
	case model.SearchStateFuture:
		return b.Start.After(opt.Now)
	case model.SearchStateCurrent:
		// Inclusive span; see DESIGN.md.
		return !b.Start.After(opt.Now) && !b.End.Before(opt.Now)
	case model.SearchStateWaiting:
		return b.Status == model.BookingStatusWaiting
	case model.SearchStateRejected:
		return b.Status == model.BookingStatusRejected
	default:
		return true
	}
}
