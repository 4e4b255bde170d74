// Package inmem is the map-backed item and comment store used by tests
// and by the server when no database is configured.
package inmem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/item/repository"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
)

type implRepository struct {
	mu            sync.Mutex
	items         map[int64]model.Item // Owner holds the id only; resolved on read
	comments      map[int64]model.Comment
	nextItemID    int64
	nextCommentID int64

	users userRepo.Repository
}

// New creates an empty in-memory item Repository backed by the given
// user store.
func New(users userRepo.Repository) repo.Repository {
	return &implRepository{
		items:         make(map[int64]model.Item),
		comments:      make(map[int64]model.Comment),
		nextItemID:    1,
		nextCommentID: 1,
		users:         users,
	}
}

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	r.mu.Lock()
	item := model.Item{
		ID:          r.nextItemID,
		Name:        opt.Name,
		Description: opt.Description,
		Available:   opt.Available,
		Owner:       model.User{ID: opt.OwnerID},
		RequestID:   opt.RequestID,
	}
	r.items[item.ID] = item
	r.nextItemID++
	r.mu.Unlock()

	return r.resolve(ctx, item)
}

func (r *implRepository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	r.mu.Lock()
	item, ok := r.items[id]
	r.mu.Unlock()

	if !ok {
		return model.Item{}, nil
	}
	return r.resolve(ctx, item)
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	r.mu.Lock()
	snapshot := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		snapshot = append(snapshot, it)
	}
	r.mu.Unlock()

	var matched []model.Item
	for _, it := range snapshot {
		if opt.OwnerID != 0 && it.Owner.ID != opt.OwnerID {
			continue
		}
		if opt.RequestID != 0 && it.RequestID != opt.RequestID {
			continue
		}
		resolved, err := r.resolve(ctx, it)
		if err != nil {
			return nil, err
		}
		matched = append(matched, resolved)
	}

	sortByID(matched)
	return matched, nil
}

func (r *implRepository) SearchItems(ctx context.Context, text string) ([]model.Item, error) {
	needle := strings.ToLower(text)

	r.mu.Lock()
	snapshot := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		snapshot = append(snapshot, it)
	}
	r.mu.Unlock()

	var matched []model.Item
	for _, it := range snapshot {
		if !it.Available {
			continue
		}
		if !strings.Contains(strings.ToLower(it.Name), needle) &&
			!strings.Contains(strings.ToLower(it.Description), needle) {
			continue
		}
		resolved, err := r.resolve(ctx, it)
		if err != nil {
			return nil, err
		}
		matched = append(matched, resolved)
	}

	sortByID(matched)
	return matched, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	r.mu.Lock()
	item, ok := r.items[opt.ID]
	if ok {
		item.Name = opt.Name
		item.Description = opt.Description
		item.Available = opt.Available
		r.items[opt.ID] = item
	}
	r.mu.Unlock()

	if !ok {
		return model.Item{}, nil
	}
	return r.resolve(ctx, item)
}

func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	author, err := r.users.GetUser(ctx, userRepo.GetUserOptions{ID: opt.AuthorID})
	if err != nil {
		return model.Comment{}, err
	}

	r.mu.Lock()
	comment := model.Comment{
		ID:      r.nextCommentID,
		Text:    opt.Text,
		Item:    model.Item{ID: opt.ItemID},
		Author:  author,
		Created: opt.Created,
	}
	r.comments[comment.ID] = comment
	r.nextCommentID++
	r.mu.Unlock()

	return comment, nil
}

func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []model.Comment
	for _, cm := range r.comments {
		if opt.ItemID != 0 && cm.Item.ID != opt.ItemID {
			continue
		}
		if len(opt.ItemIDs) > 0 && !containsID(opt.ItemIDs, cm.Item.ID) {
			continue
		}
		matched = append(matched, cm)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Created.Before(matched[j].Created)
	})
	return matched, nil
}

// resolve fills in the owner entity from the backing user store.
func (r *implRepository) resolve(ctx context.Context, it model.Item) (model.Item, error) {
	owner, err := r.users.GetUser(ctx, userRepo.GetUserOptions{ID: it.Owner.ID})
	if err != nil {
		return model.Item{}, err
	}
	it.Owner = owner
	return it, nil
}

func sortByID(items []model.Item) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
