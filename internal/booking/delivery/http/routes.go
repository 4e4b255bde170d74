package http

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
)

// RegisterRoutes maps the booking endpoints. Every route acts on behalf
// of the sharer header identity.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	bookings := rg.Group("/bookings", mw.Sharer())
	{
		bookings.POST("", h.Create)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:id", h.Get)
		bookings.PATCH("/:id", h.Approve)
	}
}
