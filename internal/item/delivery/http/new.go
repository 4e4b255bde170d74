package http

import (
	"github.com/msshishlin/shareit/internal/item"
	"github.com/msshishlin/shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates the HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
