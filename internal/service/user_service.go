package service

import (
	"context"
	"errors"

	"movies-api/internal/domain"
	"movies-api/internal/repository"
	"movies-api/pkg/apperror"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.UserSummary, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("Failed to fetch user", err)
	}

	summary := user.Summary()
	return &summary, nil
}
