package auth

import "context"

type tokenKey struct{}

// WithToken returns a context carrying the operator's bearer token for backend calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the bearer token attached with WithToken.
func TokenFromContext(ctx context.Context) (string, bool) {
	tok, ok := ctx.Value(tokenKey{}).(string)
	return tok, ok && tok != ""
}

type identityKey struct{}

// WithIdentity attaches the signed-in operator so services can attribute actions.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the operator attached with WithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(Identity)
	return ident, ok
}
