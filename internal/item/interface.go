package item

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (model.Item, error)
	// OwnerItems returns all items of the owner, enriched with comments
	// and last/next booking marks.
	OwnerItems(ctx context.Context, ownerID int64) ([]ExtendedItem, error)
	// Detail returns the public enriched view; no ownership check.
	Detail(ctx context.Context, itemID int64) (ExtendedItem, error)
	// Search returns available items whose name or description contains
	// the text case-insensitively; blank text short-circuits to empty.
	Search(ctx context.Context, text string) ([]model.Item, error)
	Update(ctx context.Context, input UpdateItemInput) (model.Item, error)
	// AddComment requires the author to have a completed booking of the
	// item.
	AddComment(ctx context.Context, input CreateCommentInput) (model.Comment, error)
}
