package store

import (
	"context"

	"github.com/elparchetipk/go-auth-api/internal/config"
	"github.com/elparchetipk/go-auth-api/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Ping verifies database connectivity; used by the health endpoint.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
