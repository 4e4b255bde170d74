package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
)

var errBadItemID = errors.New("item id must be a positive integer")

// processCreateReq binds the create item request body + sharer header.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.OwnerID = sharerID(c)
	return req, nil
}

// processUpdateReq binds the update item request body + URI param +
// sharer header.
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
	req.OwnerID = sharerID(c)
	return req, nil
}

// processCommentReq binds the comment body + URI param + sharer header.
func (h *handler) processCommentReq(c *gin.Context) (commentReq, error) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ItemID = id
	req.AuthorID = sharerID(c)
	return req, nil
}

// pathID parses the :id URI param.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadItemID
	}
	return id, nil
}

func sharerID(c *gin.Context) int64 {
	return middleware.SharerID(c)
}
