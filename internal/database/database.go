package database

import (
	"context"
	"fmt"

	"movies-api/internal/config"
	"movies-api/internal/repository"
)

// Store bundles the repositories of one document store with its shutdown hook.
type Store struct {
	Driver string
	Users  repository.UserRepository
	Movies repository.MovieRepository

	close func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store selected by cfg.Driver and prepares its
// database, collections and indexes.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverCouch:
		return openCouch(ctx, cfg)
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
