package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"seoforge/internal/llm"
)

var _ llm.Generator = (*Client)(nil)

type Client struct {
	client *openai.Client
}

func NewClient(apiKey string) *Client {
	return &Client{client: openai.NewClient(apiKey)}
}

// NewClientWithBaseURL points the client at an OpenAI-compatible endpoint.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{client: openai.NewClientWithConfig(cfg)}
}

func (c *Client) Generate(ctx context.Context, req llm.Request) (*llm.Reply, error) {
	switch req.Mode {
	case llm.ModeJSON:
		return c.generateJSON(ctx, req)
	case llm.ModeImage:
		return c.generateImage(ctx, req)
	default:
		return nil, fmt.Errorf("openai: %s mode not supported", req.Mode)
	}
}

func (c *Client) generateJSON(ctx context.Context, req llm.Request) (*llm.Reply, error) {
	instruction, err := llm.SchemaInstruction(req)
	if err != nil {
		return nil, err
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt + "\n\n" + instruction,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response")
	}

	content := resp.Choices[0].Message.Content
	slog.Debug("OpenAI reply", "model", req.Model, "length", len(content))

	return &llm.Reply{Parts: []llm.Part{{Text: content}}}, nil
}

func (c *Client) generateImage(ctx context.Context, req llm.Request) (*llm.Reply, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          req.Model,
		N:              1,
		Size:           imageSize(req.AspectRatio),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}

	reply := &llm.Reply{}
	for _, d := range resp.Data {
		if d.RevisedPrompt != "" {
			reply.Parts = append(reply.Parts, llm.Part{Text: d.RevisedPrompt})
		}
		if d.B64JSON == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(d.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		reply.Parts = append(reply.Parts, llm.Part{Data: data, MIMEType: "image/png"})
	}
	return reply, nil
}

func imageSize(aspectRatio string) string {
	switch aspectRatio {
	case "16:9":
		return openai.CreateImageSize1792x1024
	case "9:16":
		return openai.CreateImageSize1024x1792
	default:
		return openai.CreateImageSize1024x1024
	}
}
