package api

import (
	"context"

	"github.com/rpupo63/personal-blog-backend/auth"
)

type keyType string

const (
	identityKey keyType = "identity"
)

// ctxWithIdentity binds the resolved caller identity to the context.
func ctxWithIdentity(ctx context.Context, identity auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFromCtx returns the caller bound to the context. Requests that
// never passed the session middleware resolve to the anonymous identity, so
// callers always get a usable value.
func identityFromCtx(ctx context.Context) auth.Identity {
	if identity, ok := ctx.Value(identityKey).(auth.Identity); ok {
		return identity
	}
	return auth.Anonymous
}
