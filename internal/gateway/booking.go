package gateway

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

var errBadApproved = errors.New("approved must be true or false")

func (gw *Gateway) createBooking(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := req.validate(time.Now()); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, req)
}

func (gw *Gateway) bookerBookings(c *gin.Context) {
	gw.listBookings(c)
}

func (gw *Gateway) ownerBookings(c *gin.Context) {
	gw.listBookings(c)
}

func (gw *Gateway) listBookings(c *gin.Context) {
	var req listBookingsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, nil)
}

func (gw *Gateway) getBooking(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, nil)
}

func (gw *Gateway) approveBooking(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}
	if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
		response.BadRequest(c, errBadApproved)
		return
	}

	gw.forward(c, nil)
}
