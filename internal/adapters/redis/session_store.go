package redis

// Package redis provides Redis-based adapters for the admin console.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
)

const (
	tokenSuffix    = ":token"
	identitySuffix = ":identity"
)

// SessionStore keeps each session as two keys: the bearer token and the
// cached identity. The identity key never outlives the token key.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// SessionStoreOptions configures NewSessionStore.
type SessionStoreOptions struct {
	Prefix string
	Logger *slog.Logger
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient, opts SessionStoreOptions) *SessionStore {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "session:"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{client: client, prefix: prefix, logger: logger.With("component", "session_store")}
}

func (s *SessionStore) tokenKey(id string) string    { return s.prefix + id + tokenSuffix }
func (s *SessionStore) identityKey(id string) string { return s.prefix + id + identitySuffix }

// Login stores the token. roleIndicator is not used to set the role.
func (s *SessionStore) Login(ctx context.Context, id, _ string, token string, ttl time.Duration) error {
	if id == "" {
		return errors.New("session ID cannot be empty")
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("session is expired")
	}
	return s.client.Set(ctx, s.tokenKey(id), token, ttl).Err()
}

// SetIdentity overwrites the identity. The identity key inherits the token's
// remaining TTL so both expire together.
func (s *SessionStore) SetIdentity(ctx context.Context, id string, identity domainauth.Identity) error {
	if id == "" {
		return ErrNoToken
	}
	ttl, err := s.client.PTTL(ctx, s.tokenKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis pttl: %w", err)
	}
	// go-redis reports a missing key as -2 and a key without expiry as -1.
	switch {
	case ttl == -1:
		ttl = 0
	case ttl <= 0:
		return ErrNoToken
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	return s.client.Set(ctx, s.identityKey(id), data, ttl).Err()
}

// Load returns the session. A missing token is ErrNotFound; a missing or
// malformed identity yields a session with nil Identity.
func (s *SessionStore) Load(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	vals, err := s.client.MGet(ctx, s.tokenKey(id), s.identityKey(id)).Result()
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("redis mget: %w", err)
	}

	token, _ := vals[0].(string)
	if token == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess := domainauth.Session{ID: id, Token: token}

	if ttl, ttlErr := s.client.PTTL(ctx, s.tokenKey(id)).Result(); ttlErr == nil && ttl > 0 {
		sess.ExpiresAt = time.Now().Add(ttl)
	}

	raw, _ := vals[1].(string)
	if raw == "" {
		return sess, nil
	}
	var ident domainauth.Identity
	if unmarshalErr := json.Unmarshal([]byte(raw), &ident); unmarshalErr != nil {
		s.logger.WarnContext(ctx, "discarding malformed session identity", "error", unmarshalErr)
		return sess, nil
	}
	sess.Identity = &ident
	return sess, nil
}

// Logout deletes both keys. Deleting absent keys is not an error.
func (s *SessionStore) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.tokenKey(id), s.identityKey(id)).Err()
}

// ErrNotFound is returned when a session has no token.
var ErrNotFound = domainauth.ErrSessionNotFound

// ErrNoToken is returned when an identity is written for a session without a token.
var ErrNoToken = errors.New("session has no token")
