package auth

import (
	"context"
	"testing"

	domain "github.com/resmarka59/project-manager/domain/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestService creates a Service backed by an in-memory SQLite database.
func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repo := NewUserRepository(db)
	hasher := NewPasswordHasher(4)
	manager := NewJWTManager(testJWTConfig())
	return NewService(repo, hasher, manager)
}

func TestService_Register(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("valid registration", func(t *testing.T) {
		user, err := svc.Register(ctx, "alice@example.com", "password123")
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if user.ID == "" {
			t.Error("expected generated user id")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %q", user.Email)
		}
		if user.PasswordHash == "password123" {
			t.Error("expected password to be hashed")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		if _, err := svc.Register(ctx, "alice@example.com", "password123"); err != ErrUserExists {
			t.Errorf("expected ErrUserExists, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		if _, err := svc.Register(ctx, "not-an-email", "password123"); err != ErrInvalidEmail {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		if _, err := svc.Register(ctx, "bob@example.com", "short"); err != ErrWeakPassword {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol@example.com", "password123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		tokens, err := svc.Login(ctx, "carol@example.com", "password123")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		if tokens.AccessToken == "" || tokens.RefreshToken == "" {
			t.Error("expected both tokens to be issued")
		}
		if tokens.TokenType != "Bearer" {
			t.Errorf("expected Bearer token type, got %q", tokens.TokenType)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login(ctx, "carol@example.com", "wrong"); err != ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		if _, err := svc.Login(ctx, "nobody@example.com", "password123"); err != ErrInvalidCredentials {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestService_ValidateToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "dave@example.com", "password123")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	tokens, err := svc.Login(ctx, "dave@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := svc.ValidateToken(ctx, tokens.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user id %q, got %q", user.ID, claims.UserID)
	}

	// A refresh token must not pass access validation.
	if _, err := svc.ValidateToken(ctx, tokens.RefreshToken); err == nil {
		t.Error("expected error validating refresh token as access token")
	}
}

func TestService_RefreshTokens(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "erin@example.com", "password123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	tokens, err := svc.Login(ctx, "erin@example.com", "password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	fresh, err := svc.RefreshTokens(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshTokens() error = %v", err)
	}
	if fresh.AccessToken == "" {
		t.Error("expected a new access token")
	}

	if _, err := svc.RefreshTokens(ctx, tokens.AccessToken); err == nil {
		t.Error("expected error refreshing with an access token")
	}
}
