package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
	"github.com/msshishlin/shareit/internal/model"
)

var (
	errBadBookingID = errors.New("booking id must be a positive integer")
	errBadApproved  = errors.New("approved query parameter must be true or false")
)

// processCreateReq binds the create booking request body and the sharer
// identity.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.BookerID = middleware.SharerID(c)
	return req, nil
}

// processListReq binds the listing query parameters and parses the
// search state. Unknown states never reach the usecase.
func (h *handler) processListReq(c *gin.Context) (listReq, model.BookingSearchState, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, "", err
	}
	req.UserID = middleware.SharerID(c)

	state, err := model.ParseSearchState(req.State)
	if err != nil {
		return req, "", err
	}
	return req, state, nil
}

// processApproveReq parses the booking id and the approved flag.
func (h *handler) processApproveReq(c *gin.Context) (id int64, approved bool, err error) {
	id, err = pathID(c)
	if err != nil {
		return 0, false, err
	}
	approved, err = strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return 0, false, errBadApproved
	}
	return id, approved, nil
}

func sharerID(c *gin.Context) int64 {
	return middleware.SharerID(c)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadBookingID
	}
	return id, nil
}
