package aiquiz

import (
	"context"

	"github.com/saulo-duarte/quizai/internal/config"
)

type AIQuizContainer struct {
	Provider  Provider
	Generator Generator
}

func NewAIQuizContainer(ctx context.Context, s config.GeminiSettings) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx, s)
	if err != nil {
		return nil, err
	}
	if s.APIKey == "" {
		config.WithContext(ctx).Warn("GEMINI_API_KEY not set, quiz generation will fail")
	}

	return &AIQuizContainer{
		Provider:  provider,
		Generator: NewService(provider, s.Timeout),
	}, nil
}
