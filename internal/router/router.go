package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/saulo-duarte/quizai/internal/middlewares"
	"github.com/saulo-duarte/quizai/internal/quiz"
	"github.com/saulo-duarte/quizai/internal/ratelimit"
	"github.com/saulo-duarte/quizai/internal/user"
)

type RouterConfig struct {
	UserHandler    *user.Handler
	QuizHandler    *quiz.Handler
	AuthMiddleware *auth.Middleware
	Sessions       *auth.Handler
	Limiter        ratelimit.Limiter
	TrustedOrigins []string
	EnableSwagger  bool
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.Cors(cfg.TrustedOrigins))
	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)

	if cfg.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", user.Routes(cfg.UserHandler, cfg.AuthMiddleware, cfg.Limiter, cfg.Sessions))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler, cfg.AuthMiddleware, cfg.Limiter))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.Error(w, http.StatusNotFound, "Route not found")
	})
	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
