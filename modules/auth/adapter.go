package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	domain "github.com/resmarka59/project-manager/domain/user"
)

// Port defines the interface other modules use to access the identity
// layer.
type Port interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)
	ValidateToken(ctx context.Context, token string) (*domain.Claims, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// Adapter implements Port using the module's service container.
type Adapter struct {
	container mono.ServiceContainer
}

// NewAdapter creates a new auth Adapter.
func NewAdapter(container mono.ServiceContainer) *Adapter {
	return &Adapter{container: container}
}

// Register creates a new account.
func (a *Adapter) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var resp RegisterResponse
	err := call(ctx, a, "register", &req, &resp)
	return resp, err
}

// Login authenticates an account and returns tokens.
func (a *Adapter) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	err := call(ctx, a, "login", &req, &resp)
	return resp, err
}

// Refresh exchanges a refresh token for a new token pair.
func (a *Adapter) Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error) {
	var resp RefreshResponse
	err := call(ctx, a, "refresh-token", &req, &resp)
	return resp, err
}

// ValidateToken validates an access token and returns the caller identity.
func (a *Adapter) ValidateToken(ctx context.Context, token string) (*domain.Claims, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenResponse
	if err := call(ctx, a, "validate-token", &req, &resp); err != nil {
		return nil, err
	}

	if !resp.Valid {
		return nil, fmt.Errorf("token validation failed: %s", resp.Error)
	}

	return &domain.Claims{
		UserID: resp.UserID,
		Email:  resp.Email,
	}, nil
}

// GetUser retrieves a user by ID.
func (a *Adapter) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	req := GetUserRequest{UserID: userID}
	var resp GetUserResponse
	if err := call(ctx, a, "get-user", &req, &resp); err != nil {
		return nil, err
	}

	return &domain.User{
		ID:        resp.ID,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}

func call[T1 any, T2 any](ctx context.Context, a *Adapter, service string, req *T1, resp *T2) error {
	if err := helper.CallRequestReplyService(
		ctx, a.container, service, json.Marshal, json.Unmarshal, req, resp,
	); err != nil {
		return fmt.Errorf("auth.%s request failed: %w", service, err)
	}
	return nil
}
