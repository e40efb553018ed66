package httpx

import (
	"context"

	domainauth "github.com/jhaverenterprises/uniform-admin/internal/domain/auth"
	"github.com/jhaverenterprises/uniform-admin/internal/domain/capability"
)

type sessionKey struct{}

// SetSessionInContext returns a child context carrying the operator session,
// its bearer token and, when cached, its identity.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	ctx = context.WithValue(ctx, sessionKey{}, session)
	ctx = domainauth.WithToken(ctx, session.Token)
	if session.Identity != nil {
		ctx = domainauth.WithIdentity(ctx, *session.Identity)
	}
	return context.WithValue(ctx, resolutionKey{}, capability.Resolve(session.Role()))
}

// GetUserSessionFromContext returns the session and whether one is present.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext retrieves the session from the request context.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

type resolutionKey struct{}

// ResolutionFromContext returns the routing surface of the signed-in role.
// Without a session only the landing route resolves.
func ResolutionFromContext(ctx context.Context) capability.Resolution {
	if res, ok := ctx.Value(resolutionKey{}).(capability.Resolution); ok {
		return res
	}
	return capability.Resolve("")
}

// Flash carries the outcome of an action into the page rendered after it.
type Flash struct {
	Success string
	Error   string
	// Fields holds per-field validation messages keyed by form field name.
	Fields map[string]string
	// Form echoes submitted values back into the form.
	Form any
	// Extra holds action results shown next to the banner, such as a
	// shipment report or a generated document link.
	Extra map[string]any
}

type flashKey struct{}

func withFlash(ctx context.Context, f Flash) context.Context {
	return context.WithValue(ctx, flashKey{}, f)
}

func flashFromContext(ctx context.Context) (Flash, bool) {
	f, ok := ctx.Value(flashKey{}).(Flash)
	return f, ok
}
