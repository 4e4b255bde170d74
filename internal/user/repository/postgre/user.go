package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/user/repository"
)

type userRow struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func (row userRow) toModel() model.User {
	return model.User{ID: row.ID, Name: row.Name, Email: row.Email}
}

// CreateUser inserts a new user row. The unique constraint on email is
// the only duplicate defense in this store; its violation is mapped to
// ErrDuplicateEmail.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	var row userRow
	err := r.db.GetContext(ctx, &row, query, opt.Name, opt.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetUser retrieves a single user by the provided filters (AND condition).
func (r *implRepository) GetUser(ctx context.Context, opt repo.GetUserOptions) (model.User, error) {
	mods, args := buildGetUserQuery(opt)
	query := fmt.Sprintf("SELECT id, name, email FROM users WHERE %s LIMIT 1", mods)

	var row userRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// UpdateUser persists the merged user state.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
		RETURNING id, name, email`

	var row userRow
	err := r.db.GetContext(ctx, &row, query, opt.ID, opt.Name, opt.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteUser removes a user row by id.
func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ExistsUser reports whether a user row with the given id exists.
func (r *implRepository) ExistsUser(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ExistsUser"), err)
		return false, repo.ErrFailedToGet
	}
	return exists, nil
}

// buildGetUserQuery builds WHERE clause + args for GetUser.
func buildGetUserQuery(opt repo.GetUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
