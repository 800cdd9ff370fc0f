package postgres

import (
	"github.com/gaze-network/slp-indexer/internal/postgres"
	"github.com/gaze-network/slp-indexer/modules/slp/repository/postgres/gen"
)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}
