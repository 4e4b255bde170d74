package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/access"
	"github.com/msshishlin/shareit/internal/booking"
	"github.com/msshishlin/shareit/internal/item"
	"github.com/msshishlin/shareit/internal/user"
	"github.com/msshishlin/shareit/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, item.ErrItemNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, access.ErrDenied):
		response.Error(c, http.StatusForbidden, err)
	case errors.Is(err, booking.ErrItemUnavailable):
		response.Error(c, http.StatusBadRequest, err)
	default:
		response.InternalError(c)
	}
}
