package web

import (
	"context"

	"github.com/louisbranch/atelier/internal/auth/identity"
)

// authIdentityKey is the context key for the authenticated identity view.
type authIdentityKey struct{}

// contextWithIdentity returns a context carrying the sanitized identity.
func contextWithIdentity(ctx context.Context, view identity.PublicView) context.Context {
	return context.WithValue(ctx, authIdentityKey{}, view)
}

// identityFromContext extracts the sanitized identity from the context.
// The zero view is returned when no authentication happened.
func identityFromContext(ctx context.Context) identity.PublicView {
	if ctx == nil {
		return identity.PublicView{}
	}
	view, _ := ctx.Value(authIdentityKey{}).(identity.PublicView)
	return view
}
