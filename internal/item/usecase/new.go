package usecase

import (
	"time"

	bookingRepo "github.com/msshishlin/shareit/internal/booking/repository"
	"github.com/msshishlin/shareit/internal/item/repository"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
	"github.com/msshishlin/shareit/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo     repository.Repository
	users    userRepo.Repository
	bookings bookingRepo.Repository
	l        log.Logger

	// now anchors the last/next booking derivation and the completed-
	// booking check; swappable in tests.
	now func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, bookings bookingRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		users:    users,
		bookings: bookings,
		l:        l,
		now:      time.Now,
	}
}
