package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated signals that no principal is attached to the request.
var ErrUnauthenticated = errors.New("auth: no authenticated principal")

// Principal is the authenticated identity threaded through repository calls.
// It is always passed explicitly via context; there is no process-wide
// current-user state.
type Principal struct {
	ID       string
	Username string
	Name     string
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal from ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequirePrincipal extracts the principal or fails with ErrUnauthenticated.
func RequirePrincipal(ctx context.Context) (Principal, error) {
	p, ok := PrincipalFrom(ctx)
	if !ok || p.ID == "" {
		return Principal{}, ErrUnauthenticated
	}
	return p, nil
}
