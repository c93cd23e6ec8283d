package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/saulo-duarte/quizai/internal/aiquiz"
	"github.com/saulo-duarte/quizai/internal/auth"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/saulo-duarte/quizai/internal/quiz"
	"github.com/saulo-duarte/quizai/internal/ratelimit"
	"github.com/saulo-duarte/quizai/internal/router"
	"github.com/saulo-duarte/quizai/internal/user"
)

// Container owns every process-lifetime dependency. Build it once at startup
// and Close it on shutdown.
type Container struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Router http.Handler

	UserContainer   *user.UserContainer
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
}

func New(ctx context.Context, s *config.Settings) (*Container, error) {
	log := config.WithContext(ctx)

	db, err := config.OpenDatabase(ctx, s.Database)
	if err != nil {
		return nil, err
	}
	c := &Container{DB: db}

	if err := migrate(db); err != nil {
		_ = c.Close()
		return nil, err
	}

	limiter := ratelimit.NewNoop()
	if s.Redis.Addr != "" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     s.Redis.Addr,
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
		})
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("Redis unreachable, rate limiting will fail open")
		}
		limiter = ratelimit.NewRedisLimiter(c.Redis, s.Redis.RateLimit, s.Redis.RateLimitEvery)
	}

	tokens, err := auth.NewJWTManager(s.Auth.JWTSecret, s.Auth.TokenTTL)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	authMW := auth.NewMiddleware(tokens)
	sessions := auth.NewHandler(!s.Server.IsDevelopment())

	c.AIQuizContainer, err = aiquiz.NewAIQuizContainer(ctx, s.Gemini)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.UserContainer = user.NewUserContainer(db, tokens, sessions)
	c.QuizContainer = quiz.NewQuizContainer(db, c.AIQuizContainer.Generator, s.Quiz.MaxQuestions)

	c.Router = router.New(router.RouterConfig{
		UserHandler:    c.UserContainer.Handler,
		QuizHandler:    c.QuizContainer.Handler,
		AuthMiddleware: authMW,
		Sessions:       sessions,
		Limiter:        limiter,
		TrustedOrigins: s.Server.TrustedOrigins,
		EnableSwagger:  s.Server.IsDevelopment(),
	})

	return c, nil
}

func migrate(db *gorm.DB) error {
	if err := user.Migrate(db); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := quiz.Migrate(db); err != nil {
		return fmt.Errorf("migrate quizzes: %w", err)
	}
	return nil
}

func (c *Container) Close() error {
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, config.CloseDatabase(c.DB))
	}
	return errors.Join(errs...)
}
