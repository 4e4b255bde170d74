package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/request/repository"
)

const requestSelect = `
	SELECT r.id, r.description, r.created,
	       u.id AS requester_id, u.name AS requester_name, u.email AS requester_email
	FROM requests r
	JOIN users u ON u.id = r.requester_id`

type requestRow struct {
	ID             int64     `db:"id"`
	Description    string    `db:"description"`
	Created        time.Time `db:"created"`
	RequesterID    int64     `db:"requester_id"`
	RequesterName  string    `db:"requester_name"`
	RequesterEmail string    `db:"requester_email"`
}

func (row requestRow) toModel() model.ItemRequest {
	return model.ItemRequest{
		ID:          row.ID,
		Description: row.Description,
		Requester:   model.User{ID: row.RequesterID, Name: row.RequesterName, Email: row.RequesterEmail},
		Created:     row.Created,
	}
}

// CreateRequest inserts a request row and reads it back with its
// requester resolved.
func (r *implRepository) CreateRequest(ctx context.Context, opt repo.CreateRequestOptions) (model.ItemRequest, error) {
	const query = `
		INSERT INTO requests (description, requester_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query, opt.Description, opt.RequesterID, opt.Created)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToInsert
	}
	return r.GetRequest(ctx, id)
}

// GetRequest retrieves a single request by id.
func (r *implRepository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	query := requestSelect + " WHERE r.id = $1"

	var row requestRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ItemRequest{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRequest"), err)
		return model.ItemRequest{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListRequests returns requests matching the options, newest first.
func (r *implRepository) ListRequests(ctx context.Context, opt repo.ListRequestsOptions) ([]model.ItemRequest, error) {
	mods, args := buildListRequestsQuery(opt)
	query := fmt.Sprintf("%s WHERE %s ORDER BY r.created DESC", requestSelect, mods)

	var rows []requestRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRequests"), err)
		return nil, repo.ErrFailedToList
	}

	requests := make([]model.ItemRequest, len(rows))
	for i, row := range rows {
		requests[i] = row.toModel()
	}
	return requests, nil
}

// buildListRequestsQuery builds WHERE clause + args for ListRequests.
func buildListRequestsQuery(opt repo.ListRequestsOptions) (string, []any) {
	switch {
	case opt.RequesterID != 0:
		return "r.requester_id = $1", []any{opt.RequesterID}
	case opt.ExcludeRequesterID != 0:
		return "r.requester_id <> $1", []any{opt.ExcludeRequesterID}
	default:
		return "1=1", nil
	}
}
