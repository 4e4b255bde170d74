// Package gateway is the validating relay tier. It binds and validates
// request DTOs, rejects malformed input with 400, and forwards
// well-formed requests verbatim to the API server.
package gateway

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/msshishlin/shareit/internal/gateway/relay"
	"github.com/msshishlin/shareit/pkg/log"
)

// Gateway holds all dependencies for the gateway tier.
type Gateway struct {
	gin   *gin.Engine
	l     log.Logger
	port  int
	mode  string
	relay *relay.Client

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Port   int
	Mode   string
	Relay  *relay.Client

	// RateLimitPerMin caps the request intake; 0 disables the limiter.
	RateLimitPerMin int
}

// New creates a new Gateway instance with all routes wired.
func New(cfg Config) (*Gateway, error) {
	gin.SetMode(cfg.Mode)

	gw := &Gateway{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		relay:           cfg.Relay,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := gw.validate(); err != nil {
		return nil, err
	}
	gw.mapHandlers()

	return gw, nil
}

// Handler exposes the underlying router, mainly for tests.
func (gw *Gateway) Handler() http.Handler {
	return gw.gin
}

func (gw *Gateway) validate() error {
	if gw.l == nil {
		return errors.New("logger is required")
	}
	if gw.mode == "" {
		return errors.New("mode is required")
	}
	if gw.port == 0 {
		return errors.New("port is required")
	}
	if gw.relay == nil {
		return errors.New("relay client is required")
	}
	return nil
}
