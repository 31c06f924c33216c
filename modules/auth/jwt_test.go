package auth

import (
	"testing"
	"time"

	"github.com/resmarka59/project-manager/config"
)

func testJWTConfig() config.JWTConfig {
	cfg := config.Default().JWT
	cfg.SecretKey = "test-secret"
	cfg.Issuer = "test"
	return cfg
}

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token, err := manager.GenerateAccessToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}

	if claims.UserID != "user-123" {
		t.Errorf("expected user id user-123, got %q", claims.UserID)
	}
	if claims.Email != "test@example.com" {
		t.Errorf("expected email test@example.com, got %q", claims.Email)
	}
	if claims.TokenType != "access" {
		t.Errorf("expected token type access, got %q", claims.TokenType)
	}
}

func TestJWTManager_TokenTypeMismatch(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	refresh, err := manager.GenerateRefreshToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	if _, err := manager.ValidateAccessToken(refresh); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for refresh token, got %v", err)
	}

	access, err := manager.GenerateAccessToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := manager.ValidateRefreshToken(access); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	token, err := manager.GenerateAccessToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	otherCfg := testJWTConfig()
	otherCfg.SecretKey = "different-secret"
	other := NewJWTManager(otherCfg)

	if _, err := other.ValidateAccessToken(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	if _, err := manager.ValidateAccessToken("not-a-token"); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_AccessTokenSeconds(t *testing.T) {
	manager := NewJWTManager(testJWTConfig())

	want := int64((15 * time.Minute).Seconds())
	if got := manager.AccessTokenSeconds(); got != want {
		t.Errorf("expected %d seconds, got %d", want, got)
	}
}
