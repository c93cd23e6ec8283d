package aiquiz

import (
	"context"
	"time"

	"github.com/saulo-duarte/quizai/internal/apperror"
	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/sirupsen/logrus"
)

const msgGenerationFailed = "Server error during quiz creation"

// Generator turns a validated request into a quiz that satisfies the
// response contract. It performs a single model call with no retry.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GeneratedQuiz, error)
}

type service struct {
	provider Provider
	timeout  time.Duration
}

func NewService(provider Provider, timeout time.Duration) Generator {
	return &service{provider: provider, timeout: timeout}
}

func (s *service) Generate(ctx context.Context, req GenerationRequest) (*GeneratedQuiz, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"topic":      req.Topic,
		"quiz_level": req.Level,
		"questions":  req.NumberOfQuestions,
	})

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.provider.Generate(ctx, BuildPrompt(req), ResponseSchema(req))
	if err != nil {
		log.WithError(err).Warn("quiz generation call failed")
		return nil, apperror.UpstreamUnavailable(msgGenerationFailed, err)
	}

	quiz, err := ParseQuiz(raw, req)
	if err != nil {
		log.WithError(err).Warn("quiz generation returned unusable output")
		return nil, err
	}

	log.WithField("elapsed", time.Since(start).String()).Info("quiz generated")
	return quiz, nil
}
