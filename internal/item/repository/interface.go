package repository

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

// Repository defines all data access methods for the Item and Comment
// entities. Items come back with their owner resolved. Get returns the
// zero value (ID == 0) when not found.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	// SearchItems returns available items whose name or description
	// contains the text, case-insensitively.
	SearchItems(ctx context.Context, text string) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)

	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
}
