package repository

import (
	"context"
	"errors"

	"movies-api/internal/domain"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("document already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// List returns movies in ascending id order, which is insertion order.
	List(ctx context.Context, page domain.Pagination) ([]*domain.Movie, error)
	// Update applies patch and returns the record as stored afterwards.
	Update(ctx context.Context, id string, patch *domain.MoviePatch) (*domain.Movie, error)
	Delete(ctx context.Context, id string) error
}
