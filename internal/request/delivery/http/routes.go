package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
)

// RegisterRoutes maps the item-request endpoints. Every route reads the
// acting user from the X-Sharer-User-Id header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	requests := rg.Group("/requests", mw.Sharer())
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListOwn)
		requests.GET("/all", h.ListOthers)
		requests.GET("/:id", h.Get)
	}
}
