package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/msshishlin/shareit/internal/booking/repository"
	"github.com/msshishlin/shareit/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the booking domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("booking/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("booking/repository/postgre.%s", method)
}
