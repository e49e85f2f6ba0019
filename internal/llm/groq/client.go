package groq

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conneroisu/groq-go"

	"seoforge/internal/llm"
)

var _ llm.Generator = (*Client)(nil)

// Client serves JSON-mode requests through Groq chat completions.
// Groq has no image models, so image requests are rejected.
type Client struct {
	client *groq.Client
	model  groq.ChatModel
}

func NewClient(apiKey, model string, opts ...groq.Opts) (*Client, error) {
	client, err := groq.NewClient(apiKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("create groq client: %w", err)
	}

	return &Client{
		client: client,
		model:  groq.ChatModel(model),
	}, nil
}

func (c *Client) Generate(ctx context.Context, req llm.Request) (*llm.Reply, error) {
	if req.Mode != llm.ModeJSON {
		return nil, fmt.Errorf("groq: %s mode not supported", req.Mode)
	}

	instruction, err := llm.SchemaInstruction(req)
	if err != nil {
		return nil, err
	}

	model := c.model
	if req.Model != "" {
		model = groq.ChatModel(req.Model)
	}

	var messages []groq.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, groq.ChatCompletionMessage{Role: groq.RoleSystem, Content: req.System})
	}
	messages = append(messages, groq.ChatCompletionMessage{
		Role:    groq.RoleUser,
		Content: req.Prompt + "\n\n" + instruction,
	})

	resp, err := c.client.ChatCompletion(ctx, groq.ChatCompletionRequest{
		Model:          model,
		Messages:       messages,
		ResponseFormat: &groq.ChatResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response")
	}

	content := resp.Choices[0].Message.Content
	slog.Debug("Groq reply", "model", model, "length", len(content))

	return &llm.Reply{Parts: []llm.Part{{Text: content}}}, nil
}
