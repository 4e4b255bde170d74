// Package inmem is the map-backed item-request store used by tests and
// by the server when no database is configured.
package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/request/repository"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
)

type implRepository struct {
	mu       sync.Mutex
	requests map[int64]model.ItemRequest // Requester holds the id only; resolved on read
	nextID   int64

	users userRepo.Repository
}

// New creates an empty in-memory item-request Repository backed by the
// given user store.
func New(users userRepo.Repository) repo.Repository {
	return &implRepository{
		requests: make(map[int64]model.ItemRequest),
		nextID:   1,
		users:    users,
	}
}

func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	r.mu.Lock()
	request := model.ItemRequest{
		ID:          r.nextID,
		Description: opt.Description,
		Requester:   model.User{ID: opt.RequesterID},
		Created:     opt.Created,
	}
	r.requests[request.ID] = request
	r.nextID++
	r.mu.Unlock()

	return r.resolve(ctx, request)
}

func (r *implRepository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	r.mu.Lock()
	request, ok := r.requests[id]
	r.mu.Unlock()

	if !ok {
		return model.ItemRequest{}, nil
	}
	return r.resolve(ctx, request)
}

func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	r.mu.Lock()
	var matched []model.ItemRequest
	for _, request := range r.requests {
		if opt.RequesterID != 0 && request.Requester.ID != opt.RequesterID {
			continue
		}
		if opt.ExcludeRequesterID != 0 && request.Requester.ID == opt.ExcludeRequesterID {
			continue
		}
		matched = append(matched, request)
	}
	r.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Created.After(matched[j].Created)
	})

	for i, request := range matched {
		resolved, err := r.resolve(ctx, request)
		if err != nil {
			return nil, err
		}
		matched[i] = resolved
	}
	return matched, nil
}

// resolve fills the requester reference from the user store.
func (r *implRepository) resolve(ctx context.Context, request model.ItemRequest) (model.ItemRequest, error) {
	requester, err := r.users.GetUser(ctx, userRepo.GetUserOptions{ID: request.Requester.ID})
	if err != nil {
		return model.ItemRequest{}, err
	}
	if requester.ID != 0 {
		request.Requester = requester
	}
	return request, nil
}
