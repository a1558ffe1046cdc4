package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/example/storeadmin/domain/user"
	"github.com/example/storeadmin/storage"
)

func validationService() *AuthService {
	return NewAuthService(nil, NewPasswordHasher(), nil)
}

func TestRegisterValidation(t *testing.T) {
	s := validationService()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		role     string
		wantMsg  string
	}{
		{"missing username", "", "pass", "", "username is required"},
		{"missing password", "alice", "", "", "password is required"},
		{"unknown role", "alice", "pass", "superuser", "role must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(ctx, tt.username, tt.password, tt.role)
			if err == nil {
				t.Fatal("Register() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Register() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func setupService(t *testing.T) (*AuthService, func()) {
	t.Helper()

	cfg := storage.LoadConfig()
	cfg.Database = "storeadmin_test"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := storage.Connect(ctx, cfg)
	if err != nil {
		t.Skipf("document store not available at %s: %v", cfg.URI, err)
	}

	db := client.Database(cfg.Database)
	_ = db.Collection(domain.User{}.CollectionName()).Drop(ctx)

	repo := NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes() error = %v", err)
	}

	jwtCfg := DefaultJWTConfig()
	jwtCfg.SecretKey = "test-secret"
	s := NewAuthService(repo, NewPasswordHasher(), NewJWTManager(jwtCfg))

	cleanup := func() {
		cctx := context.Background()
		_ = db.Collection(domain.User{}.CollectionName()).Drop(cctx)
		_ = client.Disconnect(cctx)
	}

	return s, cleanup
}

func TestRegisterAndLogin(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "wonder", "")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if u.Role != domain.RoleUser {
		t.Errorf("u.Role = %q, want default %q", u.Role, domain.RoleUser)
	}
	if u.Password == "wonder" {
		t.Error("stored password is plaintext, want a hash")
	}

	token, logged, err := s.Login(ctx, "alice", "wonder")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("Login() returned empty token")
	}
	if logged.Username != "alice" {
		t.Errorf("logged.Username = %q, want %q", logged.Username, "alice")
	}

	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != u.ID.Hex() {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, u.ID.Hex())
	}
	if claims.Role != domain.RoleUser {
		t.Errorf("claims.Role = %q, want %q", claims.Role, domain.RoleUser)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := s.Register(ctx, "bob", "first", "admin"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	_, err := s.Register(ctx, "bob", "second", "admin")
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("Register() duplicate error = %v, want ErrUserExists", err)
	}
}

func TestLoginFailures(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := s.Register(ctx, "carol", "right", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, err := s.Login(ctx, "nobody", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Login() unknown user error = %v, want ErrUserNotFound", err)
	}

	_, _, err = s.Login(ctx, "carol", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() wrong password error = %v, want ErrInvalidCredentials", err)
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	s, cleanup := setupService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := s.Register(ctx, "first", "pass", ""); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := s.Register(ctx, "second", "pass", "admin"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	users, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len(users) = %d, want 2", len(users))
	}
	if users[0].Username != "second" {
		t.Errorf("users[0].Username = %q, want newest first", users[0].Username)
	}
}
