package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/infrastructure"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func testAdmin(t *testing.T, username, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func newAuthService(userRepo domain.UserRepository) *AuthService {
	cfg := &infrastructure.JWTConfig{
		SecretKey:          "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "neetcode-tracker-test",
	}
	return NewAuthService(userRepo, cfg, testTracer(), zap.NewNop())
}

func TestLoginIssuesValidAccessToken(t *testing.T) {
	admin := testAdmin(t, "admin", "hunter2")
	svc := newAuthService(newFakeUserRepo(admin))

	user, tokens, err := svc.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.ID != admin.ID {
		t.Fatalf("wrong user returned: %s", user.ID)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("empty token pair")
	}

	userID, err := svc.ValidateAccessToken(tokens.AccessToken)
	if err != nil {
		t.Fatalf("access token rejected: %v", err)
	}
	if userID != admin.ID {
		t.Fatalf("token carries wrong subject: %s", userID)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	admin := testAdmin(t, "admin", "hunter2")
	svc := newAuthService(newFakeUserRepo(admin))

	_, _, err := svc.Login(context.Background(), "admin", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshTokenRotatesPair(t *testing.T) {
	admin := testAdmin(t, "admin", "hunter2")
	svc := newAuthService(newFakeUserRepo(admin))

	_, tokens, err := svc.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	fresh, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if _, err := svc.ValidateAccessToken(fresh.AccessToken); err != nil {
		t.Fatalf("refreshed access token rejected: %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	admin := testAdmin(t, "admin", "hunter2")
	svc := newAuthService(newFakeUserRepo(admin))

	_, tokens, err := svc.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// An access token must not be usable as a refresh token.
	if _, err := svc.RefreshToken(context.Background(), tokens.AccessToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	admin := testAdmin(t, "admin", "hunter2")
	svc := newAuthService(newFakeUserRepo(admin))

	_, tokens, err := svc.Login(context.Background(), "admin", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if _, err := svc.ValidateAccessToken(tokens.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())

	if _, err := svc.ValidateAccessToken("not.a.jwt"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
