package usecase

import (
	"time"

	itemRepo "github.com/msshishlin/shareit/internal/item/repository"
	"github.com/msshishlin/shareit/internal/request/repository"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
	"github.com/msshishlin/shareit/pkg/log"
)

// implUseCase is the private implementation of request.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users userRepo.Repository
	items itemRepo.Repository
	l     log.Logger

	// now timestamps new requests; swappable in tests.
	now func() time.Time
}

// New creates a new item-request UseCase implementation.
func New(repo repository.Repository, users userRepo.Repository, items itemRepo.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		users: users,
		items: items,
		l:     l,
		now:   time.Now,
	}
}
