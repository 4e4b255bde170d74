package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/gateway/relay"
	"github.com/msshishlin/shareit/internal/middleware"
	"github.com/msshishlin/shareit/pkg/response"
)

var errServerUnreachable = errors.New("server unavailable")

// forward relays the current request to the server tier and copies the
// status and body back verbatim. body, when non-nil, is the validated
// DTO re-encoded as the request payload.
func (gw *Gateway) forward(c *gin.Context, body any) {
	ctx := c.Request.Context()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			gw.l.Errorf(ctx, "forward marshal: %v", err)
			response.InternalError(c)
			return
		}
	}

	res, err := gw.relay.Forward(ctx, relay.ForwardInput{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Query:     c.Request.URL.Query(),
		Body:      raw,
		SharerID:  middleware.SharerID(c),
		RequestID: c.GetString("requestID"),
	})
	if err != nil {
		gw.l.Errorf(ctx, "forward relay: %v", err)
		response.Error(c, http.StatusBadGateway, errServerUnreachable)
		return
	}

	response.Raw(c, res.Status, res.Body)
}
