package gateway

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

func (gw *Gateway) createRequest(c *gin.Context) {
	var req createRequestReq
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

func (gw *Gateway) ownRequests(c *gin.Context) {
	gw.forward(c, nil)
}

func (gw *Gateway) otherRequests(c *gin.Context) {
	gw.forward(c, nil)
}

func (gw *Gateway) getRequest(c *gin.Context) {
	if _, err := pathID(c); err != nil {
		response.BadRequest(c, err)
		return
	}

	gw.forward(c, nil)
}
