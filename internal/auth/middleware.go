package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/quizai/internal/config"
)

type Middleware struct {
	tokens *JWTManager
}

func NewMiddleware(tokens *JWTManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid session token.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		token := tokenFromRequest(r)
		if token == "" {
			log.Warn("Missing session token")
			config.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Warn("Expired session token")
			} else {
				log.WithError(err).Warn("Invalid session token")
			}
			config.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r, claims)))
	})
}

// OptionalAuth attaches the identity when a valid token is present and
// otherwise lets the request through anonymously.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Debug("Ignoring invalid token on optional route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r, claims)))
	})
}

func withIdentity(r *http.Request, claims *Claims) context.Context {
	ctx := ContextWithClaims(r.Context(), claims)
	return config.ContextWithLogger(ctx, config.WithContext(ctx).WithField("user_id", claims.UserID))
}

// tokenFromRequest prefers the Authorization header and falls back to the session cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
