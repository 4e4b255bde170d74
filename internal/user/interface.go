package user

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, input UpdateUserInput) (model.User, error)
	Delete(ctx context.Context, id int64) error
}
