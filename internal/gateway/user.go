package gateway

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

func (gw *Gateway) createUser(c *gin.Context) {
	var req createUserReq
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

func (gw *Gateway) getUser(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, nil)
}

func (gw *Gateway) updateUser(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	var req updateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, req)
}

func (gw *Gateway) deleteUser(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, nil)
}
