package repository

import (
	"context"

	"github.com/msshishlin/shareit/internal/model"
)

// Repository defines all data access methods for the User entity.
// Get returns the zero value (ID == 0) when not found, never an error.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUser(ctx context.Context, opt GetUserOptions) (model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ExistsUser(ctx context.Context, id int64) (bool, error)
}
