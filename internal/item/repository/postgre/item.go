package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/item/repository"
)

const itemSelect = `
	SELECT i.id, i.name, i.description, i.available, COALESCE(i.request_id, 0) AS request_id,
	       o.id AS owner_id, o.name AS owner_name, o.email AS owner_email
	FROM items i
	JOIN users o ON o.id = i.owner_id`

type itemRow struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Available   bool   `db:"available"`
	RequestID   int64  `db:"request_id"`
	OwnerID     int64  `db:"owner_id"`
	OwnerName   string `db:"owner_name"`
	OwnerEmail  string `db:"owner_email"`
}

func (row itemRow) toModel() model.Item {
	return model.Item{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.Available,
		Owner:       model.User{ID: row.OwnerID, Name: row.OwnerName, Email: row.OwnerEmail},
		RequestID:   row.RequestID,
	}
}

// CreateItem inserts an item row and reads it back with its owner
// resolved.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	const query = `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0))
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query, opt.Name, opt.Description, opt.Available, opt.OwnerID, opt.RequestID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return r.GetItem(ctx, id)
}

// GetItem retrieves a single item by id.
func (r *implRepository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	query := itemSelect + " WHERE i.id = $1"

	var row itemRow
	err := r.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListItems returns items matching the options.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	mods, args := buildListItemsQuery(opt)
	query := fmt.Sprintf("%s WHERE %s ORDER BY i.id", itemSelect, mods)

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return rowsToModels(rows), nil
}

// SearchItems returns available items whose name or description contains
// the text, case-insensitively.
func (r *implRepository) SearchItems(ctx context.Context, text string) ([]model.Item, error) {
	query := itemSelect + `
		WHERE i.available = TRUE
		  AND (i.name ILIKE '%' || $1 || '%' OR i.description ILIKE '%' || $1 || '%')
		ORDER BY i.id`

	var rows []itemRow
	if err := r.db.SelectContext(ctx, &rows, query, text); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}
	return rowsToModels(rows), nil
}

// UpdateItem persists the merged item state; the owner column is never
// touched.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.Name, opt.Description, opt.Available); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return r.GetItem(ctx, opt.ID)
}

func rowsToModels(rows []itemRow) []model.Item {
	items := make([]model.Item, len(rows))
	for i, row := range rows {
		items[i] = row.toModel()
	}
	return items
}
