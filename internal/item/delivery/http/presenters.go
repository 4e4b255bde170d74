package http

import (
	"github.com/msshishlin/shareit/internal/item"
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/pkg/response"
)

// --- Request DTOs ---
// The gateway tier has already validated shape; the server binds types
// only.

type createReq struct {
	OwnerID     int64  `json:"-"` // populated from the sharer header
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	OwnerID     int64  `json:"-"` // populated from the sharer header
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type commentReq struct {
	ItemID   int64  `json:"-"` // populated from URI param
	AuthorID int64  `json:"-"` // populated from the sharer header
	Text     string `json:"text"`
}

func (r commentReq) toInput() item.CreateCommentInput {
	return item.CreateCommentInput{
		ItemID:   r.ItemID,
		AuthorID: r.AuthorID,
		Text:     r.Text,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func newItemResps(items []model.Item) []itemResp {
	resps := make([]itemResp, len(items))
	for i, it := range items {
		resps[i] = newItemResp(it)
	}
	return resps
}

type extendedItemResp struct {
	itemResp
	LastBooking *response.DateTime `json:"lastBooking"`
	NextBooking *response.DateTime `json:"nextBooking"`
	Comments    []string           `json:"comments"`
}

func newExtendedItemResp(ext item.ExtendedItem) extendedItemResp {
	resp := extendedItemResp{
		itemResp: newItemResp(ext.Item),
		Comments: ext.Comments,
	}
	if resp.Comments == nil {
		resp.Comments = []string{}
	}
	if ext.LastBooking != nil {
		last := response.DateTime(*ext.LastBooking)
		resp.LastBooking = &last
	}
	if ext.NextBooking != nil {
		next := response.DateTime(*ext.NextBooking)
		resp.NextBooking = &next
	}
	return resp
}

func newExtendedItemResps(items []item.ExtendedItem) []extendedItemResp {
	resps := make([]extendedItemResp, len(items))
	for i, ext := range items {
		resps[i] = newExtendedItemResp(ext)
	}
	return resps
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(cm model.Comment) commentResp {
	return commentResp{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.Author.Name,
		Created:    response.DateTime(cm.Created),
	}
}
