package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"
	"github.com/jhaverenterprises/uniform-admin/internal/ports"
)

const defaultSessionTTL = 12 * time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Config   AuthConfig
}

// AuthConfig holds the optional collaborators and settings of AuthService.
type AuthConfig struct {
	Roles      ports.RoleMapper
	SessionTTL time.Duration
	Logger     *slog.Logger
}

// AuthService orchestrates login by coordinating the backend, role mapping,
// and session persistence. It is the only writer of the session store.
type AuthService struct {
	provider ports.AuthProvider
	sessions ports.SessionStore
	roles    ports.RoleMapper
	ttl      time.Duration
	logger   *slog.Logger

	mu        sync.RWMutex
	listeners map[int]func(domainauth.SessionEvent)
	nextID    int
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Provider == nil {
		panic("AuthService: Provider is required")
	}
	if opts.Sessions == nil {
		panic("AuthService: Sessions is required")
	}
	ttl := opts.Config.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	logger := opts.Config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider:  opts.Provider,
		sessions:  opts.Sessions,
		roles:     opts.Config.Roles,
		ttl:       ttl,
		logger:    logger.With("component", "auth_service"),
		listeners: make(map[int]func(domainauth.SessionEvent)),
	}
}

// Login authenticates with the backend and persists a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domainauth.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.ValidationField("email", "Email is required.")
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "Password is required.")
	}

	res, err := s.provider.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	ttl, err := s.sessionTTL(res.AccessToken)
	if err != nil {
		return nil, err
	}

	sessionID := generateSessionID()
	if loginErr := s.sessions.Login(ctx, sessionID, res.RoleType, res.AccessToken, ttl); loginErr != nil {
		return nil, fmt.Errorf("save session: %w", loginErr)
	}

	identity := domainauth.Identity{
		Name:     res.Name,
		RoleType: res.RoleType,
		Role:     s.mapRole(res.Role),
	}
	if idErr := s.sessions.SetIdentity(ctx, sessionID, identity); idErr != nil {
		return nil, errors.Join(
			fmt.Errorf("save identity: %w", idErr),
			s.sessions.Logout(ctx, sessionID),
		)
	}

	if !identity.Role.Known() {
		s.logger.WarnContext(ctx, "login with unrecognised role", "role", res.Role)
	}
	s.publish(domainauth.SessionEvent{Kind: domainauth.SessionLogin, SessionID: sessionID, Role: identity.Role})

	return &domainauth.Session{
		ID:        sessionID,
		Token:     res.AccessToken,
		Identity:  &identity,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// GetSession loads the session for a cookie value. A missing or expired
// session is reported as unauthorized.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("Please log in to continue.")
	}
	sess, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainauth.ErrSessionNotFound) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Please log in to continue.")
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &sess, nil
}

// Logout removes a session. Logging out twice is the same as once.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Logout(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.publish(domainauth.SessionEvent{Kind: domainauth.SessionLogout, SessionID: sessionID})
	return nil
}

// Subscribe registers fn for session lifecycle events. Events are delivered
// synchronously after the store write. The returned func unsubscribes.
func (s *AuthService) Subscribe(fn func(domainauth.SessionEvent)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *AuthService) publish(ev domainauth.SessionEvent) {
	s.mu.RLock()
	fns := make([]func(domainauth.SessionEvent), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// ForgotPassword asks the backend to email a reset link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return apperrors.ValidationField("email", "Please enter a valid email address.")
	}
	return s.provider.ForgotPassword(ctx, email)
}

// ResetPassword sets a new password using the token from the reset link.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword, confirm string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.Validation("The reset link is invalid or has expired.")
	}
	if newPassword == "" {
		return apperrors.ValidationField("password", "Password is required.")
	}
	if newPassword != confirm {
		return apperrors.ValidationField("confirmPassword", "Passwords do not match.")
	}
	return s.provider.ResetPassword(ctx, token, newPassword)
}

func (s *AuthService) mapRole(raw string) domainauth.Role {
	if s.roles != nil {
		return s.roles.Map(raw)
	}
	if role := domainauth.Role(raw); role.Known() {
		return role
	}
	return ""
}

// sessionTTL caps the configured lifetime at the token's exp claim. The
// signature is not checked here; the backend verifies it on every call.
func (s *AuthService) sessionTTL(token string) (time.Duration, error) {
	exp, ok := tokenExpiry(token)
	if !ok {
		return s.ttl, nil
	}
	remaining := time.Until(exp)
	if remaining <= 0 {
		return 0, apperrors.Unauthorized("Your session has expired. Please log in again.")
	}
	return min(remaining, s.ttl), nil
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// generateSessionID creates a random, URL-safe session ID.
func generateSessionID() string {
	return uuid.NewString()
}
