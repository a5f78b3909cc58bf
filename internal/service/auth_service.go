package service

import (
	"context"
	"errors"
	"time"

	"movies-api/internal/domain"
	"movies-api/internal/repository"
	"movies-api/pkg/apperror"
	"movies-api/pkg/hash"
	"movies-api/pkg/jwt"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *jwt.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.UserSummary, error) {
	emailExists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperror.Internal("Failed to register user", err)
	}
	if emailExists {
		return nil, apperror.Conflict("User already registered. Please log in")
	}

	hashedPassword, err := hash.Hash(req.Password)
	if err != nil {
		return nil, apperror.Internal("Failed to register user", err)
	}

	user := &domain.User{
		ID:        domain.NewID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		Birthday:  req.Birthday,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("User already registered. Please log in")
		}
		return nil, apperror.Internal("Failed to register user", err)
	}

	summary := user.Summary()
	return &summary, nil
}

func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFound("User not found. Please register")
		}
		return nil, apperror.Internal("Failed to log in", err)
	}

	if err := hash.Compare(user.Password, req.Password); err != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.Internal("Failed to generate access token", err)
	}

	claims, err := jwt.Decode(token)
	if err != nil {
		return nil, apperror.Internal("Failed to generate access token", err)
	}

	return &domain.LoginResult{
		Token:     token,
		IssuedAt:  jwt.FormatTimestamp(claims.IssuedAt.Time),
		ExpiresAt: jwt.FormatTimestamp(claims.ExpiresAt.Time),
		User:      user.Summary(),
	}, nil
}
