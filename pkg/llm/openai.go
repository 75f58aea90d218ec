package llm

import (
	"context"

	"github.com/rotisserie/eris"
	openai "github.com/sashabaranov/go-openai"
)

// openAIClient implements Client using the OpenAI chat completions API.
type openAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func newOpenAIClient(opts Options) *openAIClient {
	model := opts.Model
	if model == "" {
		model = openai.GPT4
	}
	return &openAIClient{
		client:      openai.NewClient(opts.APIKey),
		model:       model,
		temperature: float32(opts.Temperature),
		maxTokens:   opts.MaxTokens,
	}
}

func (c *openAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", eris.Wrap(err, "openai: create chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", eris.New("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
