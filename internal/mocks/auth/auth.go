package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider = (*MockAuthProvider)(nil)
	_ ports.SessionStore = (*MemorySessionStore)(nil)
	_ ports.RoleMapper   = (*StaticRoleMapper)(nil)
)

// MockAuthProvider simulates the backend login endpoints.
type MockAuthProvider struct {
	LoginFunc          func(ctx context.Context, email, password string) (ports.LoginResult, error)
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, newPassword string) error

	// DefaultResult is returned by Login when LoginFunc is nil.
	DefaultResult ports.LoginResult

	mu          sync.Mutex
	loginCalls  int
	forgotCalls int
	resetCalls  int
}

// NewMockAuthProvider creates a MockAuthProvider that logs everyone in as a super admin.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		DefaultResult: ports.LoginResult{
			AccessToken: "mock-token",
			RoleType:    "admin",
			Name:        "Mock Operator",
			Role:        string(domainauth.RoleSuperAdmin),
		},
	}
}

func (m *MockAuthProvider) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	m.mu.Lock()
	m.loginCalls++
	m.mu.Unlock()
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return m.DefaultResult, nil
}

func (m *MockAuthProvider) ForgotPassword(ctx context.Context, email string) error {
	m.mu.Lock()
	m.forgotCalls++
	m.mu.Unlock()
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthProvider) ResetPassword(ctx context.Context, token, newPassword string) error {
	m.mu.Lock()
	m.resetCalls++
	m.mu.Unlock()
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil
}

// Calls reports how many times each endpoint was hit.
func (m *MockAuthProvider) Calls() (login, forgot, reset int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls, m.forgotCalls, m.resetCalls
}

// MemorySessionStore is an in-memory session store for unit tests. It keeps
// the token and identity apart the way the Redis store does.
type MemorySessionStore struct {
	mu         sync.Mutex
	tokens     map[string]string
	identities map[string]domainauth.Identity
	expiries   map[string]time.Time
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		tokens:     make(map[string]string),
		identities: make(map[string]domainauth.Identity),
		expiries:   make(map[string]time.Time),
	}
}

func (m *MemorySessionStore) Login(_ context.Context, id, _ string, token string, ttl time.Duration) error {
	if id == "" {
		return errors.New("session ID cannot be empty")
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[id] = token
	m.expiries[id] = time.Now().Add(ttl)
	return nil
}

func (m *MemorySessionStore) SetIdentity(_ context.Context, id string, identity domainauth.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[id]; !ok {
		return ErrNoToken
	}
	m.identities[id] = identity
	return nil
}

func (m *MemorySessionStore) Load(_ context.Context, id string) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[id]
	if !ok || token == "" {
		return domainauth.Session{}, domainauth.ErrSessionNotFound
	}
	sess := domainauth.Session{ID: id, Token: token, ExpiresAt: m.expiries[id]}
	if ident, ok := m.identities[id]; ok {
		sess.Identity = &ident
	}
	return sess, nil
}

func (m *MemorySessionStore) Logout(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, id)
	delete(m.identities, id)
	delete(m.expiries, id)
	return nil
}

// Len returns the number of live sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

// TTL returns the lifetime requested for the session at login.
func (m *MemorySessionStore) TTL(id string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.expiries[id]
	if !ok {
		return 0
	}
	return time.Until(exp)
}

// ErrNoToken mirrors the Redis store's error for identities without a token.
var ErrNoToken = errors.New("session has no token")

// StaticRoleMapper maps backend role strings by exact lookup.
type StaticRoleMapper struct {
	Roles map[string]domainauth.Role
}

func (m StaticRoleMapper) Map(raw string) domainauth.Role {
	if r, ok := m.Roles[raw]; ok {
		return r
	}
	if role := domainauth.Role(raw); role.Known() {
		return role
	}
	return ""
}
