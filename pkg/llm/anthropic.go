package llm

import (
	"context"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
)

// anthropicClient implements Client using the official anthropic-sdk-go.
type anthropicClient struct {
	client      sdk.Client
	model       string
	temperature float64
	maxTokens   int64
}

func newAnthropicClient(opts Options) *anthropicClient {
	model := opts.Model
	if model == "" {
		model = "claude-sonnet-4-5-20250929"
	}
	return &anthropicClient{
		client:      sdk.NewClient(option.WithAPIKey(opts.APIKey)),
		model:       model,
		temperature: opts.Temperature,
		maxTokens:   int64(opts.MaxTokens),
	}
}

func (c *anthropicClient) Complete(ctx context.Context, system, user string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: sdk.Float(c.temperature),
		System:      []sdk.TextBlockParam{{Text: system}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "anthropic: create message")
	}

	var parts []string
	for _, block := range msg.Content {
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return "", eris.New("anthropic: empty response")
	}
	return strings.Join(parts, "\n"), nil
}
