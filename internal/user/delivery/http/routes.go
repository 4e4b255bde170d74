package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the user endpoints. User routes carry no sharer
// identity; the id in the path is the subject.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("/:id", h.GetByID)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
