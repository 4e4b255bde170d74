package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/msshishlin/shareit/pkg/log"
)

// HTTPServer holds all dependencies for the API server tier.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// db is nil when the server runs on the in-memory stores.
	db *sqlx.DB
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	DB          *sqlx.DB
}

// New creates a new HTTPServer instance with all domains wired.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
