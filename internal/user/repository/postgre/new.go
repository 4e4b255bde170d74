package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/msshishlin/shareit/internal/user/repository"
	"github.com/msshishlin/shareit/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the user domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/postgre.%s", method)
}
