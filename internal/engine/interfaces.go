package engine

import "context"

// Oracle is the minimal contract the pipelines need from a text-generation
// collaborator. The concrete providers live in internal/llm.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
