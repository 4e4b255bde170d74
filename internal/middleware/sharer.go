package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/pkg/response"
)

// SharerHeader carries the acting user's id on every identity-bound
// route. Both tiers trust it; there is no session auth in ShareIt.
const SharerHeader = "X-Sharer-User-Id"

const sharerKey = "sharerID"

var errSharerHeader = errors.New("X-Sharer-User-Id header must be a positive integer")

// Sharer requires a well-formed sharer header and stores the id in the
// request context. Malformed or missing headers are rejected with 400
// before any handler runs.
func (mw Middleware) Sharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader(SharerHeader), 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, errSharerHeader)
			c.Abort()
			return
		}
		c.Set(sharerKey, id)
		c.Next()
	}
}

// SharerID returns the id stored by Sharer. Zero means the middleware
// was not applied to the route.
func SharerID(c *gin.Context) int64 {
	return c.GetInt64(sharerKey)
}
