// Package llm provides oracle clients for categorization and narrative
// generation. Every provider sits behind a single free-text contract; the
// caller owns prompt construction and best-effort parsing of the reply.
package llm

import (
	"context"
)

// Client defines the interface for oracle providers.
type Client interface {
	// Generate sends a prompt and returns the provider's raw text reply.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider selection and credentials.
type Config struct {
	Provider          string
	APIKey            string
	Model             string
	Temperature       float64
	MaxTokens         int
	RequestsPerMinute int
}
