package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/saulo-duarte/quizai/internal/config"
	"google.golang.org/genai"
)

var ErrProviderNotConfigured = errors.New("gemini api key not configured")

// Provider sends one prompt with a structured-output schema and returns the
// raw text of the model response.
type Provider interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, s config.GeminiSettings) (Provider, error) {
	if s.APIKey == "" {
		return unavailableProvider{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: s.Model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		log.WithError(err).WithField("model", p.model).Error("gemini generate content failed")
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	log.WithField("bytes", len(raw)).Debug("gemini response received")
	return raw, nil
}

// unavailableProvider stands in when no API key is configured so the rest of
// the service still starts.
type unavailableProvider struct{}

func (unavailableProvider) Generate(context.Context, string, *genai.Schema) (string, error) {
	return "", ErrProviderNotConfigured
}
