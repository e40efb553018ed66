package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"time"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

// LoginResult is what the backend returns for valid credentials.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	RoleType    string `json:"roleType"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

// AuthProvider authenticates operators against the backend.
type AuthProvider interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// SessionStore persists operator sessions as a token plus a cached identity.
type SessionStore interface {
	// Login stores the bearer token. roleIndicator is accepted for symmetry with
	// the backend response and does not set the role.
	Login(ctx context.Context, id, roleIndicator, token string, ttl time.Duration) error
	// SetIdentity overwrites the cached identity. The token must already exist.
	SetIdentity(ctx context.Context, id string, identity domainauth.Identity) error
	Load(ctx context.Context, id string) (domainauth.Session, error)
	// Logout removes token and identity. Calling it again is a no-op.
	Logout(ctx context.Context, id string) error
}

// RoleMapper maps backend role strings to application roles.
type RoleMapper interface {
	Map(raw string) domainauth.Role
}
