// Package inmem is the map-backed user store used by tests and by the
// server when no database is configured.
package inmem

import (
	"context"
	"sync"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/user/repository"
)

type implRepository struct {
	mu     sync.Mutex
	users  map[int64]model.User
	nextID int64
}

// New creates an empty in-memory user Repository.
func New() repo.Repository {
	return &implRepository{
		users:  make(map[int64]model.User),
		nextID: 1,
	}
}

// CreateUser pre-checks email uniqueness before inserting. The check and
// the insert run under one lock, unlike the original's check-then-act.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == opt.Email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}

	user := model.User{ID: r.nextID, Name: opt.Name, Email: opt.Email}
	r.users[user.ID] = user
	r.nextID++
	return user, nil
}

func (r *implRepository) GetUser(ctx context.Context, opt repo.GetUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if opt.ID != 0 {
		u, ok := r.users[opt.ID]
		if !ok || (opt.Email != "" && u.Email != opt.Email) {
			return model.User{}, nil
		}
		return u, nil
	}
	if opt.Email != "" {
		for _, u := range r.users {
			if u.Email == opt.Email {
				return u, nil
			}
		}
	}
	return model.User{}, nil
}

func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if id != opt.ID && u.Email == opt.Email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}

	user := model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}
	r.users[opt.ID] = user
	return user, nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

func (r *implRepository) ExistsUser(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.users[id]
	return ok, nil
}
