package http

import (
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/internal/request"
	"github.com/msshishlin/shareit/pkg/response"
)

// --- Request DTOs ---
// The gateway tier has already validated shape; the server binds types
// only.

type createReq struct {
	RequesterID int64  `json:"-"` // populated from the sharer header
	Description string `json:"description"`
}

func (r createReq) toInput() request.CreateRequestInput {
	return request.CreateRequestInput{
		RequesterID: r.RequesterID,
		Description: r.Description,
	}
}

// --- Response DTOs ---

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     response.DateTime `json:"created"`
}

func newRequestResp(req model.ItemRequest) requestResp {
	return requestResp{
		ID:          req.ID,
		Description: req.Description,
		Created:     response.DateTime(req.Created),
	}
}

func newRequestResps(requests []model.ItemRequest) []requestResp {
	resps := make([]requestResp, len(requests))
	for i, req := range requests {
		resps[i] = newRequestResp(req)
	}
	return resps
}

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId,omitempty"`
}

type requestWithItemsResp struct {
	requestResp
	Items []itemResp `json:"items"`
}

func newRequestWithItemsResp(rwi request.RequestWithItems) requestWithItemsResp {
	resp := requestWithItemsResp{
		requestResp: newRequestResp(rwi.Request),
		Items:       make([]itemResp, len(rwi.Items)),
	}
	for i, it := range rwi.Items {
		resp.Items[i] = itemResp{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		}
	}
	return resp
}
