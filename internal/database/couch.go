package database

import (
	"context"
	"fmt"

	"movies-api/internal/config"
	"movies-api/internal/repository"

	"github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb"
)

const couchIndexDesignDoc = "movies-api"

func openCouch(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	client, err := kivik.New("couch", cfg.CouchURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to CouchDB: %w", err)
	}

	exists, err := client.DBExists(ctx, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		if err := client.CreateDB(ctx, cfg.Name); err != nil {
			return nil, fmt.Errorf("failed to create database: %w", err)
		}
	}

	db := client.DB(cfg.Name)
	if err := db.CreateIndex(ctx, couchIndexDesignDoc, "user-email", map[string]interface{}{
		"fields": []string{"doc_type", "email"},
	}); err != nil {
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	return &Store{
		Driver: config.DriverCouch,
		Users:  repository.NewUserRepository(client, cfg.Name),
		Movies: repository.NewMovieRepository(client, cfg.Name),
		close: func(context.Context) error {
			return client.Close()
		},
	}, nil
}
