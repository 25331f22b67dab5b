package api

import (
	"context"

	"github.com/rpupo63/unsaid-thoughts-backend/services"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity attaches the verified caller identity to the context
func ctxWithIdentity(ctx context.Context, identity services.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFrom retrieves the caller identity, reporting whether one
// was attached (the optional gate leaves it absent).
func identityFrom(ctx context.Context) (services.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(services.Identity)
	return identity, ok
}
