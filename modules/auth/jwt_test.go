package auth

import (
	"errors"
	"testing"
	"time"
)

func testJWTConfig() JWTConfig {
	cfg := DefaultJWTConfig()
	cfg.SecretKey = "test-secret"
	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	token, err := m.Generate("user-123", "admin")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Role != "admin" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "admin")
	}
	if claims.Issuer != testJWTConfig().Issuer {
		t.Errorf("claims.Issuer = %q, want %q", claims.Issuer, testJWTConfig().Issuer)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	m := NewJWTManager(testJWTConfig())
	token, err := m.Generate("user-123", "user")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	other := testJWTConfig()
	other.SecretKey = "different-secret"

	_, err = NewJWTManager(other).Validate(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() with wrong secret, error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenDuration = -time.Minute
	m := NewJWTManager(cfg)

	token, err := m.Generate("user-123", "user")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = m.Validate(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Validate() on expired token, error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestTokenDuration(t *testing.T) {
	m := NewJWTManager(testJWTConfig())
	if got := m.TokenDuration(); got != 86400 {
		t.Errorf("TokenDuration() = %d, want 86400", got)
	}
}
