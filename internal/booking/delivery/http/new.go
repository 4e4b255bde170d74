package http

import (
	"github.com/msshishlin/shareit/internal/booking"
	"github.com/msshishlin/shareit/pkg/log"
)

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates the HTTP handler for the booking domain.
func New(l log.Logger, uc booking.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
