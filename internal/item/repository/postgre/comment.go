package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/item/repository"
)

const commentSelect = `
	SELECT c.id, c.text, c.item_id, c.created,
	       a.id AS author_id, a.name AS author_name, a.email AS author_email
	FROM comments c
	JOIN users a ON a.id = c.author_id`

type commentRow struct {
	ID          int64     `db:"id"`
	Text        string    `db:"text"`
	ItemID      int64     `db:"item_id"`
	Created     time.Time `db:"created"`
	AuthorID    int64     `db:"author_id"`
	AuthorName  string    `db:"author_name"`
	AuthorEmail string    `db:"author_email"`
}

func (row commentRow) toModel() model.Comment {
	return model.Comment{
		ID:      row.ID,
		Text:    row.Text,
		Item:    model.Item{ID: row.ItemID},
		Author:  model.User{ID: row.AuthorID, Name: row.AuthorName, Email: row.AuthorEmail},
		Created: row.Created,
	}
}

// CreateComment inserts a comment row and reads it back with its author
// resolved.
func (r *implRepository) CreateComment(ctx context.Context, opt repo.CreateCommentOptions) (model.Comment, error) {
	const query = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query, opt.Text, opt.ItemID, opt.AuthorID, opt.Created)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToInsert
	}

	var row commentRow
	if err := r.db.GetContext(ctx, &row, commentSelect+" WHERE c.id = $1", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateComment"), err)
		return model.Comment{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListComments returns comments matching the options, oldest first.
func (r *implRepository) ListComments(ctx context.Context, opt repo.ListCommentsOptions) ([]model.Comment, error) {
	mods, args := buildListCommentsQuery(opt)
	query := fmt.Sprintf("%s WHERE %s ORDER BY c.created", commentSelect, mods)

	var rows []commentRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListComments"), err)
		return nil, repo.ErrFailedToList
	}

	comments := make([]model.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toModel()
	}
	return comments, nil
}
