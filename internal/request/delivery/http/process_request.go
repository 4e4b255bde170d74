package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
)

var errBadRequestID = errors.New("request id must be a positive integer")

// processCreateReq binds the create request body + sharer header.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.RequesterID = sharerID(c)
	return req, nil
}

// pathID parses the :id URI param.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadRequestID
	}
	return id, nil
}

func sharerID(c *gin.Context) int64 {
	return middleware.SharerID(c)
}
