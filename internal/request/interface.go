package request

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

// UseCase defines the item-request board operations.
type UseCase interface {
	Create(ctx context.Context, input CreateRequestInput) (model.ItemRequest, error)
	// ListOwn returns the requests posted by the user.
	ListOwn(ctx context.Context, userID int64) ([]model.ItemRequest, error)
	// ListOthers returns requests posted by everyone else, newest first.
	ListOthers(ctx context.Context, userID int64) ([]model.ItemRequest, error)
	// Get returns one request enriched with the items answering it.
	Get(ctx context.Context, userID, requestID int64) (RequestWithItems, error)
}
