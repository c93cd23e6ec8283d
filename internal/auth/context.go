package auth

import (
	"context"
	"errors"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

var ErrNoClaims = errors.New("no user claims in context")

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// UserIDFromContext is the optional-identity form used by routes that also serve anonymous callers.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	claims, err := GetUserClaimsFromContext(ctx)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}
