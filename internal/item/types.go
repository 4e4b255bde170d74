package item

import (
	"time"

	"github.com/msshishlin/shareit/internal/model"
)

// CreateItemInput carries the fields for listing a new item.
type CreateItemInput struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	// RequestID links the item to the request it fulfills; 0 = none.
	RequestID int64
}

// UpdateItemInput carries a partial update. Blank name/description keep
// the stored values; Available is tri-state because false is a valid
// overwrite.
type UpdateItemInput struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   *bool
}

// CreateCommentInput carries a post-rental comment.
type CreateCommentInput struct {
	ItemID   int64
	AuthorID int64
	Text     string
}

// ExtendedItem is an item enriched with its comments and the bookings
// nearest to now: LastBooking is the end of a booking whose span
// contains now, NextBooking the start of the earliest future booking.
type ExtendedItem struct {
	Item        model.Item
	LastBooking *time.Time
	NextBooking *time.Time
	Comments    []string
}
