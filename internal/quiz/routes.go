package quiz

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/ratelimit"
)

func Routes(h *Handler, authMW *auth.Middleware, limiter ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.With(authMW.OptionalAuth).Get("/", h.ListQuizzes)
	r.With(authMW.RequireAuth, ratelimit.Middleware(limiter, "quiz-create")).Post("/create", h.CreateQuiz)
	return r
}
