package request

import "github.com/msshishlin/shareit/internal/model"

// CreateRequestInput carries the fields for posting an item request.
type CreateRequestInput struct {
	RequesterID int64
	Description string
}

// RequestWithItems is a request enriched with the catalog items that
// were listed in answer to it.
type RequestWithItems struct {
	Request model.ItemRequest
	Items   []model.Item
}
