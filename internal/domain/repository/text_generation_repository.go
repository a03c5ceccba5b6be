package repository

import "context"

// TextGenerationRepository sends a single prompt to a text model and returns its text
type TextGenerationRepository interface {
	GenerateContent(ctx context.Context, model, prompt string) (string, error)
}
