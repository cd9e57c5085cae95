package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/lenahart/ledgerlens/internal/common"
)

// geminiClient implements the Client interface over the GenAI SDK.
type geminiClient struct {
	client  *genai.Client
	limiter *rateLimiter
	model   string
}

// newGeminiClient creates a new Gemini oracle client. The API key falls
// back to the SDK's environment lookup when not set explicitly.
func newGeminiClient(ctx context.Context, cfg Config) (Client, error) {
	clientConfig := &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	}
	if cfg.APIKey != "" {
		clientConfig.APIKey = cfg.APIKey
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &geminiClient{
		client:  client,
		model:   model,
		limiter: newRateLimiter(cfg.RequestsPerMinute),
	}, nil
}

// Generate sends the prompt to Gemini and returns the raw text reply.
func (c *geminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return "", err
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", common.ErrEmptyResponse
	}

	return text, nil
}
