package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/msshishlin/shareit/internal/item/repository"
	"github.com/msshishlin/shareit/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the item domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/postgre.%s", method)
}
