package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/msshishlin/shareit/pkg/response"
)

// RateLimit caps the gateway's request intake with a shared token
// bucket. perMin <= 0 disables the limiter.
func (mw Middleware) RateLimit(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.ErrResp{Error: "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
