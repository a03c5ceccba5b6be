package repository

import (
	"context"
	"fmt"
	"strings"

	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/logger"

	"google.golang.org/genai"
)

// GeminiRepository calls the Gemini generateContent endpoint
type GeminiRepository struct {
	client *genai.Client
	logger logger.Logger
}

// NewGeminiRepository creates a Gemini API client authenticated with an API key.
// An empty baseURL uses the public endpoint.
func NewGeminiRepository(ctx context.Context, apiKey, baseURL string, logger logger.Logger) (repository.TextGenerationRepository, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: baseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiRepository{
		client: client,
		logger: logger,
	}, nil
}

// GenerateContent sends prompt as a single user turn and returns the text of the
// first candidate. An empty string means the model produced no text.
func (r *GeminiRepository) GenerateContent(ctx context.Context, model, prompt string) (string, error) {
	resp, err := r.client.Models.GenerateContent(ctx, strings.TrimPrefix(model, "models/"), genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		r.logger.Warn("Model returned no candidates", "model", model)
		return "", nil
	}

	text := resp.Text()
	r.logger.Debug("Model response received",
		"model", model,
		"finishReason", resp.Candidates[0].FinishReason,
		"length", len(text))

	return text, nil
}
