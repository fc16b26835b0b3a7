package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"botforge/clients"
)

// AnthropicClient implements the clients.LLMClient interface using the anthropic-sdk-go SDK
type AnthropicClient struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicClient creates a new client for the Messages API
func NewAnthropicClient(apiKey, model string, opts ...option.RequestOption) clients.LLMClient {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		model:  anthropic.Model(model),
	}
}

// Complete sends the prompt and concatenates the text blocks of the reply
func (c *AnthropicClient) Complete(ctx context.Context, request clients.CompletionRequest) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: request.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(request.UserPrompt)),
		},
		Temperature: anthropic.Float(request.Temperature),
	}
	if request.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: request.SystemPrompt}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("anthropic response contained no text content")
	}

	return text.String(), nil
}
