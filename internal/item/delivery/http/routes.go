package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
)

// RegisterRoutes maps the item endpoints. Every route reads the acting
// user from the X-Sharer-User-Id header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Sharer())
	{
		items.POST("", h.Create)
		items.GET("", h.OwnerItems)
		items.GET("/search", h.Search)
		items.GET("/:id", h.Detail)
		items.PATCH("/:id", h.Update)
		items.POST("/:id/comment", h.AddComment)
	}
}
