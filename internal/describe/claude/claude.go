package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"

	"propluxe/internal/describe"
)

// Generator produces listing descriptions through the Anthropic Messages API.
type Generator struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewGenerator(apiKey, model string, opts ...anthropic.ClientOption) *Generator {
	return &Generator{
		client: anthropic.NewClient(apiKey, opts...),
		model:  anthropic.Model(model),
	}
}

func (g *Generator) Describe(ctx context.Context, p describe.Params) (string, error) {
	resp, err := g.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: g.model,
		// The target copy is 80-120 words; 512 tokens is ample.
		MaxTokens: 512,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(describe.Prompt(p)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	text := strings.TrimSpace(resp.GetFirstContentText())
	if text == "" {
		return "", fmt.Errorf("model returned an empty description")
	}
	return text, nil
}
