package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/msshishlin/shareit/internal/access"
	bookingRepo "github.com/msshishlin/shareit/internal/booking/repository"
	"github.com/msshishlin/shareit/internal/item"
	repo "github.com/msshishlin/shareit/internal/item/repository"
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/internal/user"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
)

// Create lists a new item for an existing owner.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (model.Item, error) {
	if err := uc.requireUser(ctx, input.OwnerID); err != nil {
		return model.Item{}, err
	}

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		Available:   input.Available,
		OwnerID:     input.OwnerID,
		RequestID:   input.RequestID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return model.Item{}, err
	}
	return created, nil
}

// OwnerItems returns the owner's items, each enriched with comments and
// last/next booking marks.
func (uc *implUseCase) OwnerItems(ctx context.Context, ownerID int64) ([]item.ExtendedItem, error) {
	if err := uc.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.OwnerItems ListItems: %v", err)
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	bookings, err := uc.listBookings(ctx, ids)
	if err != nil {
		return nil, err
	}
	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemIDs: ids})
	if err != nil {
		uc.l.Errorf(ctx, "uc.OwnerItems ListComments: %v", err)
		return nil, err
	}

	extended := make([]item.ExtendedItem, len(items))
	for i, it := range items {
		extended[i] = uc.extend(it, bookings, comments)
	}
	return extended, nil
}

// Detail returns the public enriched view of an item.
func (uc *implUseCase) Detail(ctx context.Context, itemID int64) (item.ExtendedItem, error) {
	found, err := uc.repo.GetItem(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return item.ExtendedItem{}, err
	}
	if found.ID == 0 {
		return item.ExtendedItem{}, fmt.Errorf("item with id = %d: %w", itemID, item.ErrItemNotFound)
	}

	bookings, err := uc.listBookings(ctx, []int64{itemID})
	if err != nil {
		return item.ExtendedItem{}, err
	}
	comments, err := uc.repo.ListComments(ctx, repo.ListCommentsOptions{ItemID: itemID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail ListComments: %v", err)
		return item.ExtendedItem{}, err
	}

	return uc.extend(found, bookings, comments), nil
}

// Search returns available items matching the text. Blank text returns
// an empty result, never the whole catalog.
func (uc *implUseCase) Search(ctx context.Context, text string) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	items, err := uc.repo.SearchItems(ctx, text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search SearchItems: %v", err)
		return nil, err
	}
	return items, nil
}

// Update merges the incoming partial state over the stored item. Only
// the owner may update; blank name/description and nil availability keep
// the stored values.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (model.Item, error) {
	existing, err := uc.ownedItem(ctx, input.ID, input.OwnerID)
	if err != nil {
		return model.Item{}, err
	}

	available := existing.Available
	if input.Available != nil {
		available = *input.Available
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        coalesce(input.Name, existing.Name),
		Description: coalesce(input.Description, existing.Description),
		Available:   available,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return model.Item{}, err
	}
	return updated, nil
}

// AddComment persists a post-rental comment. The author must have at
// least one booking of the item that ended before now.
func (uc *implUseCase) AddComment(ctx context.Context, input item.CreateCommentInput) (model.Comment, error) {
	authorBookings, err := uc.bookings.ListBookings(ctx, bookingRepo.ListBookingsOptions{
		BookerID: input.AuthorID,
		ItemID:   input.ItemID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment ListBookings: %v", err)
		return model.Comment{}, err
	}

	now := uc.now()
	completed := false
	for _, b := range authorBookings {
		if b.End.Before(now) {
			completed = true
			break
		}
	}
	if !completed {
		return model.Comment{}, fmt.Errorf("user with id = %d cannot comment on item with id = %d: %w",
			input.AuthorID, input.ItemID, item.ErrCommentNotAllowed)
	}

	found, err := uc.repo.GetItem(ctx, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment GetItem: %v", err)
		return model.Comment{}, err
	}
	if found.ID == 0 {
		return model.Comment{}, fmt.Errorf("item with id = %d: %w", input.ItemID, item.ErrItemNotFound)
	}
	if err := uc.requireUser(ctx, input.AuthorID); err != nil {
		return model.Comment{}, err
	}

	created, err := uc.repo.CreateComment(ctx, repo.CreateCommentOptions{
		Text:     input.Text,
		ItemID:   input.ItemID,
		AuthorID: input.AuthorID,
		Created:  now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddComment CreateComment: %v", err)
		return model.Comment{}, err
	}
	created.Item = found
	return created, nil
}

// ownedItem fetches an item and enforces that the viewer owns it.
func (uc *implUseCase) ownedItem(ctx context.Context, itemID, viewerID int64) (model.Item, error) {
	found, err := uc.repo.GetItem(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedItem GetItem: %v", err)
		return model.Item{}, err
	}
	if found.ID == 0 {
		return model.Item{}, fmt.Errorf("item with id = %d: %w", itemID, item.ErrItemNotFound)
	}
	if err := access.RequireOwner(found.Owner.ID, viewerID); err != nil {
		return model.Item{}, fmt.Errorf("item with id = %d: %w", itemID, err)
	}
	return found, nil
}

// extend attaches comments and the last/next booking marks to an item.
// Last is the end of a booking whose span contains now (first match,
// order arbitrary); next is the start of the earliest future booking.
func (uc *implUseCase) extend(it model.Item, bookings []model.Booking, comments []model.Comment) item.ExtendedItem {
	now := uc.now()
	ext := item.ExtendedItem{Item: it}

	for _, b := range bookings {
		if b.Item.ID != it.ID {
			continue
		}
		if ext.LastBooking == nil && b.Start.Before(now) && b.End.After(now) {
			end := b.End
			ext.LastBooking = &end
		}
		if b.Start.After(now) && (ext.NextBooking == nil || b.Start.Before(*ext.NextBooking)) {
			start := b.Start
			ext.NextBooking = &start
		}
	}

	for _, cm := range comments {
		if cm.Item.ID == it.ID {
			ext.Comments = append(ext.Comments, cm.Text)
		}
	}
	return ext
}

func (uc *implUseCase) listBookings(ctx context.Context, itemIDs []int64) ([]model.Booking, error) {
	bookings, err := uc.bookings.ListBookings(ctx, bookingRepo.ListBookingsOptions{ItemIDs: itemIDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.listBookings ListBookings: %v", err)
		return nil, err
	}
	return bookings, nil
}

func (uc *implUseCase) requireUser(ctx context.Context, id int64) error {
	found, err := uc.users.GetUser(ctx, userRepo.GetUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireUser GetUser: %v", err)
		return err
	}
	if found.ID == 0 {
		return fmt.Errorf("user with id = %d: %w", id, user.ErrUserNotFound)
	}
	return nil
}

// coalesce keeps the stored value when the incoming one is blank.
func coalesce(incoming, existing string) string {
	if strings.TrimSpace(incoming) != "" {
		return incoming
	}
	return existing
}
