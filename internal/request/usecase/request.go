package usecase

import (
	"context"
	"fmt"

	itemRepo "github.com/msshishlin/shareit/internal/item/repository"
	"github.com/msshishlin/shareit/internal/model"
	"github.com/msshishlin/shareit/internal/request"
	repo "github.com/msshishlin/shareit/internal/request/repository"
	"github.com/msshishlin/shareit/internal/user"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
)

// Create posts an item request for an existing user, timestamped now.
func (uc *implUseCase) Create(ctx context.Context, input request.CreateRequestInput) (model.ItemRequest, error) {
	if err := uc.requireUser(ctx, input.RequesterID); err != nil {
		return model.ItemRequest{}, err
	}

	created, err := uc.repo.CreateRequest(ctx, repo.CreateRequestOptions{
		Description: input.Description,
		RequesterID: input.RequesterID,
		Created:     uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRequest: %v", err)
		return model.ItemRequest{}, err
	}
	return created, nil
}

// ListOwn returns the user's own requests, newest first.
func (uc *implUseCase) ListOwn(ctx context.Context, userID int64) ([]model.ItemRequest, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{RequesterID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOwn ListRequests: %v", err)
		return nil, err
	}
	return requests, nil
}

// ListOthers returns requests posted by everyone except the user,
// newest first.
func (uc *implUseCase) ListOthers(ctx context.Context, userID int64) ([]model.ItemRequest, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := uc.repo.ListRequests(ctx, repo.ListRequestsOptions{ExcludeRequesterID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOthers ListRequests: %v", err)
		return nil, err
	}
	return requests, nil
}

// Get returns one request enriched with the items listed in answer to
// it. The user check runs before the request lookup.
func (uc *implUseCase) Get(ctx context.Context, userID, requestID int64) (request.RequestWithItems, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return request.RequestWithItems{}, err
	}

	found, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetRequest: %v", err)
		return request.RequestWithItems{}, err
	}
	if found.ID == 0 {
		return request.RequestWithItems{}, fmt.Errorf("item request with id = %d: %w", requestID, request.ErrRequestNotFound)
	}

	items, err := uc.items.ListItems(ctx, itemRepo.ListItemsOptions{RequestID: requestID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get ListItems: %v", err)
		return request.RequestWithItems{}, err
	}

	return request.RequestWithItems{Request: found, Items: items}, nil
}

func (uc *implUseCase) requireUser(ctx context.Context, id int64) error {
	found, err := uc.users.GetUser(ctx, userRepo.GetUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.requireUser GetUser: %v", err)
		return err
	}
	if found.ID == 0 {
		return fmt.Errorf("user with id = %d: %w", id, user.ErrUserNotFound)
	}
	return nil
}
