package database

import (
	"context"
	"fmt"

	"movies-api/internal/config"
	"movies-api/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func openMongo(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Name)

	// Registration checks then inserts; the unique index rejects the loser of
	// a concurrent pair with a duplicate key error.
	_, err = db.Collection(repository.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create email index: %w", err)
	}

	return &Store{
		Driver: config.DriverMongo,
		Users:  repository.NewMongoUserRepository(db),
		Movies: repository.NewMongoMovieRepository(db),
		close:  client.Disconnect,
	}, nil
}
