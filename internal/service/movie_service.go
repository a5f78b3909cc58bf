package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"movies-api/internal/domain"
	"movies-api/internal/repository"
	"movies-api/pkg/apperror"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type MovieService struct {
	repo   repository.MovieRepository
	policy *ContentPolicy
}

func NewMovieService(repo repository.MovieRepository, policy *ContentPolicy) *MovieService {
	if policy == nil {
		policy = NewContentPolicy(DefaultBannedWords...)
	}
	return &MovieService{
		repo:   repo,
		policy: policy,
	}
}

// CanModify reports whether callerID owns movie.
func CanModify(callerID string, movie *domain.Movie) bool {
	if movie == nil {
		return false
	}
	caller := strings.TrimSpace(callerID)
	return caller != "" && caller == strings.TrimSpace(movie.UserID)
}

func (s *MovieService) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("Movie not found")
		}
		return nil, apperror.Internal("Failed to fetch movie", err)
	}
	return movie, nil
}

func (s *MovieService) GetAll(ctx context.Context, page domain.Pagination) ([]*domain.Movie, error) {
	if page.Limit <= 0 {
		page.Limit = DefaultPageLimit
	}
	if page.Limit > MaxPageLimit {
		page.Limit = MaxPageLimit
	}
	if page.Skip < 0 {
		page.Skip = 0
	}

	movies, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch movies", err)
	}
	return movies, nil
}

// CreateMovie stores a new movie owned by ownerID.
func (s *MovieService) CreateMovie(ctx context.Context, ownerID string, input *domain.MovieInput) (*domain.Movie, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperror.Unauthorized("You must be logged in to access this resource.")
	}

	now := time.Now().UTC()
	movie := &domain.Movie{
		ID:        domain.NewID(),
		UserID:    ownerID,
		Title:     input.Title,
		Plot:      input.Plot,
		Directors: input.Directors,
		Released:  input.Released,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, apperror.Internal("Failed to create movie", err)
	}

	return movie, nil
}

// UpdateMovie applies patch to the movie if callerID owns it and the new
// plot, when given, passes the content policy.
func (s *MovieService) UpdateMovie(ctx context.Context, id, callerID string, patch *domain.MoviePatch) (*domain.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("Movie with ID %s not found", id))
		}
		return nil, apperror.Internal("Failed to fetch movie", err)
	}

	if patch.Plot != nil {
		if words := s.policy.Violations(*patch.Plot); len(words) > 0 {
			return nil, apperror.BadRequest(bannedWordsMessage(words)).WithDetails(words)
		}
	}

	if !CanModify(callerID, movie) {
		return nil, apperror.Forbidden("You are not allowed to modify this movie")
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound(fmt.Sprintf("Movie with ID %s not found", id))
		}
		return nil, apperror.Internal("Failed to update movie", err)
	}

	return updated, nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, id, callerID string) error {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(fmt.Sprintf("Movie with ID %s not found", id))
		}
		return apperror.Internal("Failed to fetch movie", err)
	}

	if !CanModify(callerID, movie) {
		return apperror.Forbidden("You are not allowed to delete this movie")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(fmt.Sprintf("Movie with ID %s not found", id))
		}
		return apperror.Internal("Failed to delete movie", err)
	}

	return nil
}
