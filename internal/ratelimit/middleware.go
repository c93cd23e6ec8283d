package ratelimit

import (
	"net"
	"net/http"

	"github.com/saulo-duarte/quizai/internal/config"
)

// Middleware limits requests per client IP for one purpose ("login", "quiz-create", ...).
// Limiter failures let the request through.
func Middleware(l Limiter, purpose string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())
			ip := clientIP(r)

			allowed, err := l.Allow(r.Context(), purpose+":"+ip)
			if err != nil {
				log.WithError(err).Error("Rate limiter unavailable")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				log.WithField("ip", ip).Warnf("Rate limit exceeded for %s", purpose)
				config.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
