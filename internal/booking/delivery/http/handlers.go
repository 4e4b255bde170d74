package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Description Creates a WAITING booking on behalf of the sharer header identity.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Booker id"
// @Param       body             body   createReq true "Booking data"
// @Success     201 {object} bookingResp
// @Failure     400 {object} response.ErrResp "Item unavailable"
// @Failure     404 {object} response.ErrResp
// @Router      /bookings [POST]
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

	response.Created(c, newBookingResp(created))
}

// Get godoc
// @Summary     Get a booking
// @Description Visible to the booker and the item's owner only.
// @Tags        Booking
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Viewer id"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     403 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /bookings/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	found, err := h.uc.Get(ctx, id, sharerID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newBookingResp(found))
}

// ListByBooker godoc
// @Summary     List own bookings
// @Tags        Booking
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Booker id"
// @Param       state query string false "ALL/CURRENT/PAST/FUTURE/WAITING/REJECTED"
// @Param       from  query int    false "Offset (default 0)"
// @Param       size  query int    false "Page size (default 10)"
// @Success     200 {array} bookingResp
// @Failure     404 {object} response.ErrResp
// @Router      /bookings [GET]
func (h *handler) ListByBooker(c *gin.Context) {
	ctx := c.Request.Context()

	req, state, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	bookings, err := h.uc.ListByBooker(ctx, req.toInput(state))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByBooker: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newBookingRespList(bookings))
}

// ListByOwner godoc
// @Summary     List bookings of owned items
// @Tags        Booking
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Owner id"
// @Param       state query string false "ALL/CURRENT/PAST/FUTURE/WAITING/REJECTED"
// @Param       from  query int    false "Offset (default 0)"
// @Param       size  query int    false "Page size (default 10)"
// @Success     200 {array} bookingResp
// @Failure     404 {object} response.ErrResp
// @Router      /bookings/owner [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, state, err := h.processListReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	bookings, err := h.uc.ListByOwner(ctx, req.toInput(state))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByOwner: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newBookingRespList(bookings))
}

// Approve godoc
// @Summary     Approve or reject a booking
// @Description Only the booked item's owner may decide.
// @Tags        Booking
// @Produce     json
// @Param       X-Sharer-User-Id header int  true "Owner id"
// @Param       id       path  int  true "Booking ID"
// @Param       approved query bool true "true approves, false rejects"
// @Success     200 {object} bookingResp
// @Failure     403 {object} response.ErrResp
// @Failure     404 {object} response.ErrResp
// @Router      /bookings/{id} [PATCH]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	id, approved, err := h.processApproveReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	updated, err := h.uc.Approve(ctx, id, sharerID(c), approved)
	if err != nil {
		h.l.Errorf(ctx, "uc.Approve: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newBookingResp(updated))
}
