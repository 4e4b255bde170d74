package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/user"
	"github.com/msshishlin/shareit/pkg/response"
)

// mapError translates domain errors into HTTP responses. Anything
// unrecognized is a 500 with the cause kept in the logs.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, user.ErrEmailTaken):
		response.Error(c, http.StatusConflict, err)
	default:
		response.InternalError(c)
	}
}
