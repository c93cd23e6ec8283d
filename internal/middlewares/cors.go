package middlewares

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
)

// Cors allows the configured origins. Credentials are only allowed for an
// explicit origin list since browsers refuse them with a wildcard.
func Cors(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{"Content-Length", RequestIDHeader},
		AllowCredentials: !slices.Contains(origins, "*"),
		MaxAge:           300,
	})
}
