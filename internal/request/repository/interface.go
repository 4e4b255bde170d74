package repository

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

// Repository defines all data access methods for the ItemRequest
// entity. Requests come back with their requester resolved. Get returns
// the zero value (ID == 0) when not found.
type Repository interface {
	CreateRequest(ctx context.Context, opt CreateRequestOptions) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListRequests(ctx context.Context, opt ListRequestsOptions) ([]model.ItemRequest, error)
}
