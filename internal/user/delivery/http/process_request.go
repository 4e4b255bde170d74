package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errBadUserID = errors.New("user id must be a positive integer")

// processCreateReq binds the create user request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update user request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// pathID parses the :id URI param.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadUserID
	}
	return id, nil
}
