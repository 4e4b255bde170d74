package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/internal/user"
	repo "github.com/msshishlin/shareit/internal/user/repository"
)

// Create registers a new user. A duplicate email is reported as
// user.ErrEmailTaken with the offending address.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (model.User, error) {
	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return model.User{}, fmt.Errorf("email %s: %w", input.Email, user.ErrEmailTaken)
		}
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return model.User{}, err
	}
	return created, nil
}

// GetByID returns the user or user.ErrUserNotFound.
func (uc *implUseCase) GetByID(ctx context.Context, id int64) (model.User, error) {
	found, err := uc.repo.GetUser(ctx, repo.GetUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByID GetUser: %v", err)
		return model.User{}, err
	}
	if found.ID == 0 {
		return model.User{}, fmt.Errorf("user with id = %d: %w", id, user.ErrUserNotFound)
	}
	return found, nil
}

// Update merges the incoming partial state over the stored user.
// Blank name/email keep the stored values.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (model.User, error) {
	existing, err := uc.GetByID(ctx, input.ID)
	if err != nil {
		return model.User{}, err
	}

	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  coalesce(input.Name, existing.Name),
		Email: coalesce(input.Email, existing.Email),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return model.User{}, fmt.Errorf("email %s: %w", input.Email, user.ErrEmailTaken)
		}
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return model.User{}, err
	}
	return updated, nil
}

// Delete removes the user or reports user.ErrUserNotFound.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	return nil
}

// coalesce keeps the stored value when the incoming one is blank, the
// partial-update rule shared by user and item updates.
func coalesce(incoming, existing string) string {
	if strings.TrimSpace(incoming) != "" {
		return incoming
	}
	return existing
}
