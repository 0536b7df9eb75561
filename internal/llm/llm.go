// Package llm defines the text-completion contract the pipeline depends on.
// Providers live in subpackages; the pipeline only sees this interface.
package llm

import "context"

// Generator produces text for a prompt. Implementations issue a single
// blocking call with no retry policy; callers decide how failures degrade.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Params carries the model parameters shared by all providers.
type Params struct {
	Model       string
	Temperature float64
	MaxTokens   int
}
