package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"movies-api/internal/domain"
	"movies-api/internal/repository"
	"movies-api/pkg/apperror"
	"movies-api/pkg/hash"
	"movies-api/pkg/jwt"
)

type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; ok {
		return repository.ErrDuplicate
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.FindByEmail(ctx, email)
	return err == nil, nil
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockUserRepository()
	service := NewAuthService(repo, jwt.NewTokenService("test-secret", 0))
	ctx := context.Background()

	tests := []struct {
		name     string
		req      *domain.RegisterRequest
		wantKind apperror.Kind
		wantErr  bool
		setup    func()
	}{
		{
			name: "successful registration",
			req: &domain.RegisterRequest{
				Name:     "New User",
				Email:    "new@example.com",
				Password: "Password123",
				Birthday: "1990-01-02",
			},
			setup: func() {},
		},
		{
			name: "duplicate email",
			req: &domain.RegisterRequest{
				Name:     "Another User",
				Email:    "existing@example.com",
				Password: "Password123",
			},
			wantErr:  true,
			wantKind: apperror.KindConflict,
			setup: func() {
				hashedPw, _ := hash.Hash("ExistingPass123")
				repo.Create(ctx, &domain.User{
					ID:       domain.NewID(),
					Name:     "Existing User",
					Email:    "existing@example.com",
					Password: hashedPw,
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.users = make(map[string]*domain.User)
			tt.setup()

			summary, err := service.Register(ctx, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Register() expected error but got none")
				}
				if kind := apperror.KindOf(err); kind != tt.wantKind {
					t.Errorf("Register() error kind = %v, want %v", kind, tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("Register() unexpected error = %v", err)
			}

			if !domain.IsValidID(summary.ID) {
				t.Errorf("Register() id = %q, want 24-char hex", summary.ID)
			}
			if summary.Name != tt.req.Name || summary.Email != tt.req.Email || summary.Birthday != tt.req.Birthday {
				t.Errorf("Register() summary = %+v", summary)
			}

			stored, err := repo.FindByEmail(ctx, tt.req.Email)
			if err != nil {
				t.Fatal("Register() user not created in repository")
			}
			if stored.Password == tt.req.Password {
				t.Error("Register() stored the plaintext password")
			}
			if err := hash.Compare(stored.Password, tt.req.Password); err != nil {
				t.Errorf("Register() stored hash does not match password: %v", err)
			}
		})
	}
}

func TestAuthService_RegisterTwice(t *testing.T) {
	repo := newMockUserRepository()
	service := NewAuthService(repo, jwt.NewTokenService("test-secret", 0))
	ctx := context.Background()

	req := &domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"}

	if _, err := service.Register(ctx, req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := service.Register(ctx, req)
	if !apperror.Is(err, apperror.KindConflict) {
		t.Errorf("second Register() error = %v, want Conflict", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	repo := newMockUserRepository()
	tokens := jwt.NewTokenService("test-secret-key", 0)
	service := NewAuthService(repo, tokens)
	ctx := context.Background()

	password := "UserPassword123"
	hashedPassword, _ := hash.Hash(password)

	userID := domain.NewID()
	repo.Create(ctx, &domain.User{
		ID:       userID,
		Name:     "Test User",
		Email:    "test@example.com",
		Password: hashedPassword,
	})

	tests := []struct {
		name     string
		req      *domain.LoginRequest
		wantErr  bool
		wantKind apperror.Kind
	}{
		{
			name: "successful login",
			req: &domain.LoginRequest{
				Email:    "test@example.com",
				Password: password,
			},
		},
		{
			name: "wrong password",
			req: &domain.LoginRequest{
				Email:    "test@example.com",
				Password: "WrongPassword",
			},
			wantErr:  true,
			wantKind: apperror.KindUnauthorized,
		},
		{
			name: "non-existent email",
			req: &domain.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: password,
			},
			wantErr:  true,
			wantKind: apperror.KindNotFound,
		},
		{
			name: "empty password",
			req: &domain.LoginRequest{
				Email:    "test@example.com",
				Password: "",
			},
			wantErr:  true,
			wantKind: apperror.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := service.Login(ctx, tt.req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Login() expected error but got none")
				}
				if kind := apperror.KindOf(err); kind != tt.wantKind {
					t.Errorf("Login() error kind = %v, want %v", kind, tt.wantKind)
				}
				return
			}

			if err != nil {
				t.Fatalf("Login() unexpected error = %v", err)
			}

			claims, err := tokens.Verify(resp.Token)
			if err != nil {
				t.Fatalf("Login() returned unverifiable token: %v", err)
			}
			if claims.UserID != userID {
				t.Errorf("token userId = %q, want %q", claims.UserID, userID)
			}

			if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != jwt.DefaultExpiration {
				t.Errorf("token window = %v, want %v", got, jwt.DefaultExpiration)
			}
			if resp.IssuedAt != jwt.FormatTimestamp(claims.IssuedAt.Time) {
				t.Errorf("IssuedAt = %q", resp.IssuedAt)
			}
			if resp.ExpiresAt != jwt.FormatTimestamp(claims.ExpiresAt.Time) {
				t.Errorf("ExpiresAt = %q", resp.ExpiresAt)
			}

			if resp.User.ID != userID || resp.User.Email != "test@example.com" {
				t.Errorf("Login() user = %+v", resp.User)
			}
		})
	}
}

func TestAuthService_LoginWithoutSecret(t *testing.T) {
	repo := newMockUserRepository()
	service := NewAuthService(repo, jwt.NewTokenService("", time.Hour))
	ctx := context.Background()

	hashedPassword, _ := hash.Hash("secret1")
	repo.Create(ctx, &domain.User{ID: domain.NewID(), Name: "Ana", Email: "ana@example.com", Password: hashedPassword})

	_, err := service.Login(ctx, &domain.LoginRequest{Email: "ana@example.com", Password: "secret1"})
	if !apperror.Is(err, apperror.KindInternal) {
		t.Fatalf("Login() error = %v, want Internal", err)
	}
	if strings.Contains(err.Error(), "secret1") {
		t.Error("Login() error leaks the password")
	}
}

func TestUserService_GetByID(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)
	ctx := context.Background()

	id := domain.NewID()
	repo.Create(ctx, &domain.User{ID: id, Name: "Ana", Email: "ana@example.com", Password: "hashed"})

	summary, err := service.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if summary.ID != id || summary.Name != "Ana" {
		t.Errorf("GetByID() = %+v", summary)
	}

	if _, err := service.GetByID(ctx, domain.NewID()); !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("GetByID() missing user error = %v, want NotFound", err)
	}
}
