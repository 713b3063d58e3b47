package api

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-admin-backend/auth"
)

type keyType string

const (
	sessionKey keyType = "session"
)

// ctxWithSession adds verified session claims to the context
func ctxWithSession(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, sessionKey, claims)
}

// ctxGetSession retrieves session claims from the context
func ctxGetSession(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(sessionKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, errors.New("no session in context")
	}
	return claims, nil
}
