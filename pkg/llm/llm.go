// Package llm provides a provider-agnostic chat-completion client used by
// the fact-check pipeline. Providers are selected at startup; the handle is
// stateless and safe for concurrent use.
package llm

import (
	"context"

	"github.com/rotisserie/eris"
)

// Client is a minimal completion interface: one system instruction, one user
// instruction, free-form text back. The caller treats the response as
// unreliable prose, never as structured output.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Options configures a provider client.
type Options struct {
	Provider    string // "openai" or "anthropic"
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// New returns a Client for the configured provider.
func New(opts Options) (Client, error) {
	if opts.APIKey == "" {
		return nil, eris.Errorf("llm: %s API key is required", opts.Provider)
	}

	switch opts.Provider {
	case "anthropic":
		return newAnthropicClient(opts), nil
	case "openai", "":
		return newOpenAIClient(opts), nil
	default:
		return nil, eris.Errorf("llm: unsupported provider %q", opts.Provider)
	}
}
