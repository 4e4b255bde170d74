package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

// Create godoc
// @Summary     Post an item request
// @Tags        Request
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Requester ID"
// @Param       body             body   createReq true "Request data"
// @Success     201 {object} requestResp
// @Failure     404 {object} response.ErrResp "Requester not found"
// @Router      /requests [POST]
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

	response.Created(c, newRequestResp(created))
}

// ListOwn godoc
// @Summary     List the caller's own item requests
// @Tags        Request
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Requester ID"
// @Success     200 {array} requestResp
// @Failure     404 {object} response.ErrResp "Requester not found"
// @Router      /requests [GET]
func (h *handler) ListOwn(c *gin.Context) {
	ctx := c.Request.Context()

	requests, err := h.uc.ListOwn(ctx, sharerID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOwn: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newRequestResps(requests))
}

// ListOthers godoc
// @Summary     List other users' item requests
// @Description Newest first.
// @Tags        Request
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Viewer ID"
// @Success     200 {array} requestResp
// @Failure     404 {object} response.ErrResp "Viewer not found"
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()

	requests, err := h.uc.ListOthers(ctx, sharerID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOthers: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newRequestResps(requests))
}

// Get godoc
// @Summary     Get an item request by id
// @Description The request comes back with the items listed in answer
// @Description to it.
// @Tags        Request
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Viewer ID"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} requestWithItemsResp
// @Failure     404 {object} response.ErrResp
// @Router      /requests/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	found, err := h.uc.Get(ctx, sharerID(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newRequestWithItemsResp(found))
}
