package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	pkgAuth "github.com/sanjaykhanna/clubcrm-backend/pkg/auth"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/config"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/security"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users         map[string]*models.User
	lastLoginID   uuid.UUID
	lastLoginTime time.Time
	updateErr     error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*models.User{}}
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := s.users[username]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.lastLoginID = id
	s.lastLoginTime = at
	return nil
}

type stubSessionManager struct {
	generated []string
	err       error
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.generated = append(s.generated, accessID)
	return "refresh-" + accessID, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "clubcrm",
		ExpirationMinutes: 30,
	}
}

func seedStubUser(t *testing.T, repo *stubUserRepo, username, password string, role enums.Role) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{
		ArgonMemoryKB:    1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Stub " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
	}
	repo.users[username] = user
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newStubUserRepo()
	sessions := &stubSessionManager{}
	user := seedStubUser(t, repo, "agent1", "correct-horse", enums.RoleAgent)

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "agent1", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected token pair in response")
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatal("expected sanitized user in response")
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user_id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != enums.RoleAgent {
		t.Fatalf("unexpected role claim %s", claims.Role)
	}
	if len(sessions.generated) != 1 || sessions.generated[0] != claims.ID {
		t.Fatalf("expected session stored under jti %s", claims.ID)
	}
	if repo.lastLoginID != user.ID {
		t.Fatal("expected last login recorded")
	}
}

func TestLoginUnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	sessions := &stubSessionManager{}
	seedStubUser(t, repo, "agent1", "correct-horse", enums.RoleAgent)

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	_, wrongErr := svc.Login(context.Background(), LoginRequest{Username: "agent1", Password: "wrong"})

	for _, err := range []error{unknownErr, wrongErr} {
		if err == nil {
			t.Fatal("expected login failure")
		}
		typed := pkgerrors.As(err)
		if typed == nil {
			t.Fatalf("expected typed error, got %v", err)
		}
		if typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %s", typed.Code())
		}
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("messages must not reveal which check failed: %q vs %q", unknownErr, wrongErr)
	}
	if !strings.Contains(unknownErr.Error(), invalidCredentialsMessage) {
		t.Fatalf("unexpected message %q", unknownErr)
	}
	if len(sessions.generated) != 0 {
		t.Fatal("no session should be created on failed login")
	}
}

func TestLoginLastLoginFailureSurfaces(t *testing.T) {
	repo := newStubUserRepo()
	repo.updateErr = errors.New("db down")
	seedStubUser(t, repo, "agent1", "correct-horse", enums.RoleAgent)

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: &stubSessionManager{},
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Username: "agent1", Password: "correct-horse"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}
