// Package ai provides the LLM client abstraction and the recommendation and
// chat features built on top of it. Every external failure degrades to a
// local fallback; nothing in this package surfaces an AI outage to end users.
package ai

import (
	"context"
	"fmt"

	"github.com/skillswap/skillswap-api/internal/config"
)

// Client is an abstraction over chat-completion providers.
type Client interface {
	// GenerateContent generates free-text content from a system prompt and a
	// user prompt.
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
	// GenerateJSON generates content expected to be JSON. Markdown code
	// fences are stripped from the result.
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates an LLM client for the configured provider. A missing API
// key returns (nil, nil): callers treat a nil client as fallback-only mode.
func NewClient(ctx context.Context, provider, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, nil
	}

	switch provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, apiKey)
	case config.ProviderOpenAI:
		return NewOpenAIClient(apiKey), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", provider)
	}
}
