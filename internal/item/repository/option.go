package repository

import "time"

// CreateItemOptions holds parameters for inserting a new item.
type CreateItemOptions struct {
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   int64 // 0 = no originating request
}

// ListItemsOptions holds filter parameters for listing items. All
// non-zero fields are applied as AND conditions.
type ListItemsOptions struct {
	OwnerID   int64
	RequestID int64
}

// UpdateItemOptions holds the full merged state to persist. The owner
// never changes after creation.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Description string
	Available   bool
}

// CreateCommentOptions holds parameters for inserting a comment.
type CreateCommentOptions struct {
	Text     string
	ItemID   int64
	AuthorID int64
	Created  time.Time
}

// ListCommentsOptions holds filter parameters for listing comments.
type ListCommentsOptions struct {
	ItemID  int64
	ItemIDs []int64
}
