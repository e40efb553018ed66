package auth

// Package auth contains domain-level types for operator sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned by session stores when no token exists for an id.
var ErrSessionNotFound = errors.New("session not found")

// Role is the operator role reported by the backend at login.
// The string form matches the backend verbatim, spaces included.
type Role string

const (
	RoleSuperAdmin       Role = "SUPER ADMIN"
	RoleProductManager   Role = "PRODUCT MANAGER"
	RoleInventoryManager Role = "INVENTORY MANAGER"
	RoleCustomerCare     Role = "CUSTOMER CARE"
)

// Roles lists every known role in display order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleProductManager, RoleInventoryManager, RoleCustomerCare}
}

// Known reports whether r is one of the enumerated roles.
func (r Role) Known() bool {
	switch r {
	case RoleSuperAdmin, RoleProductManager, RoleInventoryManager, RoleCustomerCare:
		return true
	default:
		return false
	}
}

// Identity is the cached display identity of the logged-in operator.
type Identity struct {
	Name     string `json:"name"`
	RoleType string `json:"roleType"`
	Role     Role   `json:"role"`
}

// Session is the server-side record for one browser.
// Identity may be nil even when Token is set; callers degrade to default navigation.
type Session struct {
	ID        string
	Token     string
	Identity  *Identity
	ExpiresAt time.Time
}

// IsAuthenticated is true exactly when a token is present.
func (s *Session) IsAuthenticated() bool { return s != nil && s.Token != "" }

// Role returns the identity role, or "" when no identity is cached.
func (s *Session) Role() Role {
	if s == nil || s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}

// DisplayName returns the operator name for the header.
func (s *Session) DisplayName() string {
	if s == nil || s.Identity == nil {
		return ""
	}
	return s.Identity.Name
}

// SessionEventKind distinguishes lifecycle notifications.
type SessionEventKind string

const (
	SessionLogin  SessionEventKind = "login"
	SessionLogout SessionEventKind = "logout"
)

// SessionEvent is delivered to subscribers after the durable write completes.
type SessionEvent struct {
	Kind      SessionEventKind
	SessionID string
	Role      Role
}
