package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

// Create godoc
// @Summary     List a new item
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Owner ID"
// @Param       body             body   createReq true "Item data"
// @Success     201 {object} itemResp
// @Failure     404 {object} response.ErrResp "Owner not found"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newItemResp(created))
}

// OwnerItems godoc
// @Summary     List the caller's items
// @Description Each item is enriched with its comments and last/next
// @Description booking marks.
// @Tags        Item
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Owner ID"
// @Success     200 {array} extendedItemResp
// @Failure     404 {object} response.ErrResp "Owner not found"
// @Router      /items [GET]
func (h *handler) OwnerItems(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.OwnerItems(ctx, sharerID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.OwnerItems: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newExtendedItemResps(items))
}

// Detail godoc
// @Summary     Get an item by id
// @Tags        Item
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Viewer ID"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} extendedItemResp
// @Failure     404 {object} response.ErrResp
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	found, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newExtendedItemResp(found))
}

// Search godoc
// @Summary     Search available items by text
// @Description Blank text yields an empty result.
// @Tags        Item
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Viewer ID"
// @Param       text             query  string false "Search text"
// @Success     200 {array} itemResp
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.uc.Search(ctx, c.Query("text"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newItemResps(items))
}

// Update godoc
// @Summary     Partially update an item
// @Description Blank fields keep the stored values. Only the owner may
// @Description update.
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Owner ID"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.ErrResp "Not the owner"
// @Failure     404 {object} response.ErrResp
// @Router      /items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newItemResp(updated))
}

// AddComment godoc
// @Summary     Comment on a rented item
// @Description The author must have a booking of the item that already
// @Description ended.
// @Tags        Item
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Author ID"
// @Param       id               path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment text"
// @Success     201 {object} commentResp
// @Failure     400 {object} response.ErrResp "No completed booking"
// @Failure     404 {object} response.ErrResp
// @Router      /items/{id}/comment [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommentReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	created, err := h.uc.AddComment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		h.mapError(c, err)
		return
	}

	response.Created(c, newCommentResp(created))
}
