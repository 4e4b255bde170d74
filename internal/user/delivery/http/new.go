package http

import (
	"github.com/msshishlin/shareit/internal/user"
	"github.com/msshishlin/shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates the HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
