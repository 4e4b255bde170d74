package http

import (
	"github.com/msshishlin/shareit/internal/request"
	"github.com/msshishlin/shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc request.UseCase
}

// New creates the HTTP handler for the item-request domain.
func New(l log.Logger, uc request.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
