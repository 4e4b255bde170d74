package usecase

import (
	"time"

	"github.com/msshishlin/shareit/internal/booking/repository"
	itemRepo "github.com/msshishlin/shareit/internal/item/repository"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
	"github.com/msshishlin/shareit/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users userRepo.Repository
	items itemRepo.Repository
	l     log.Logger

	// now is the reference clock for time-relative filters; swappable in
	// tests.
	now func() time.Time
}

// New creates a new booking UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, items itemRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		items: items,
		l:     l,
		now:   time.Now,
	}
}
