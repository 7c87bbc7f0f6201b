// Package llm provides language model clients for the semantic entry
// assist: turning free text like "晚餐50" into an amount, a category
// display name, and a note. It supports OpenAI and Anthropic providers.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers.
type Client interface {
	Parse(ctx context.Context, input string) (ParseResponse, error)
}

// ParseResponse is the raw extraction result from the provider. Category is
// a display name; mapping onto the taxonomy happens in the Suggester.
type ParseResponse struct {
	Category string
	Note     string
	Amount   float64
}

// Config holds provider configuration.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}
