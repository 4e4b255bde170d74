package gateway

import (
	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/middleware"
	"github.com/msshishlin/shareit/pkg/response"
)

func (gw *Gateway) mapHandlers() {
	mw := middleware.New(gw.l)

	gw.gin.Use(gin.Recovery())
	gw.gin.Use(mw.RequestID())
	gw.gin.Use(mw.RateLimit(gw.rateLimitPerMin))

	gw.gin.GET("/health", gw.healthCheck)

	users := gw.gin.Group("/users")
	{
		users.POST("", gw.createUser)
		users.GET("/:id", gw.getUser)
		users.PATCH("/:id", gw.updateUser)
		users.DELETE("/:id", gw.deleteUser)
	}

	items := gw.gin.Group("/items", mw.Sharer())
	{
		items.POST("", gw.createItem)
		items.GET("", gw.ownerItems)
		items.GET("/search", gw.searchItems)
		items.GET("/:id", gw.getItem)
		items.PATCH("/:id", gw.updateItem)
		items.POST("/:id/comment", gw.addComment)
	}

	bookings := gw.gin.Group("/bookings", mw.Sharer())
	{
		bookings.POST("", gw.createBooking)
		bookings.GET("", gw.bookerBookings)
		bookings.GET("/owner", gw.ownerBookings)
		bookings.GET("/:id", gw.getBooking)
		bookings.PATCH("/:id", gw.approveBooking)
	}

	requests := gw.gin.Group("/requests", mw.Sharer())
	{
		requests.POST("", gw.createRequest)
		requests.GET("", gw.ownRequests)
		requests.GET("/all", gw.otherRequests)
		requests.GET("/:id", gw.getRequest)
	}
}

// healthCheck reports gateway liveness without touching the server tier.
func (gw *Gateway) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "shareit-gateway",
	})
}
