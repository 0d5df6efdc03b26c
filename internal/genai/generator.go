// Package genai wraps the Google Gemini API behind a narrow text-generation
// interface so the dispatcher never sees the SDK directly.
package genai

import "context"

// Generator produces a text completion for a free-form prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
