package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed back on every response so the two tiers can
// be correlated in logs.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns a request id when the caller did not send one.
// The gateway generates it; the server propagates the gateway's value.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set("requestID", id)
		c.Next()
	}
}
