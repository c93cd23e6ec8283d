package user

import (
	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/ratelimit"
)

func Routes(h *Handler, authMW *auth.Middleware, limiter ratelimit.Limiter, sessions *auth.Handler) chi.Router {
	r := chi.NewRouter()

	r.With(ratelimit.Middleware(limiter, "register")).Post("/register", h.Register)
	r.With(ratelimit.Middleware(limiter, "login")).Post("/login", h.Login)
	r.Post("/logout", sessions.Logout)
	r.With(authMW.RequireAuth).Get("/me", h.GetUser)
	return r
}
