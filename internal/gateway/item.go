package gateway

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

func (gw *Gateway) createItem(c *gin.Context) {
	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, req)
}

func (gw *Gateway) ownerItems(c *gin.Context) {
	gw.forward(c, nil)
}

func (gw *Gateway) searchItems(c *gin.Context) {
	gw.forward(c, nil)
}

func (gw *Gateway) getItem(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, nil)
}

func (gw *Gateway) updateItem(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, req)
}

func (gw *Gateway) addComment(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	var req createCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := req.validate(); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, req)
}
