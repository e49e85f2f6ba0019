package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"seoforge/internal/llm"
)

var _ llm.Generator = (*Client)(nil)

const (
	BackendGeminiAPI = "gemini"
	BackendVertexAI  = "vertex"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Config struct {
	Backend    string
	APIKey     string
	Project    string
	Location   string
	HTTPClient *http.Client
}

type Client struct {
	models contentGenerator
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cc := &genai.ClientConfig{HTTPClient: cfg.HTTPClient}
	switch cfg.Backend {
	case BackendVertexAI:
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	case "", BackendGeminiAPI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini api key is required")
		}
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	default:
		return nil, fmt.Errorf("unknown gemini backend %q", cfg.Backend)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{models: client.Models}, nil
}

func (c *Client) Generate(ctx context.Context, req llm.Request) (*llm.Reply, error) {
	config := buildConfig(req)

	start := time.Now()
	resp, err := c.models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	reply := toReply(resp)
	slog.Debug("Gemini reply",
		"model", req.Model,
		"mode", req.Mode,
		"parts", len(reply.Parts),
		"elapsed", time.Since(start),
	)
	return reply, nil
}

func buildConfig(req llm.Request) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	switch req.Mode {
	case llm.ModeJSON:
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
	case llm.ModeImage:
		config.ResponseModalities = []string{string(genai.ModalityText), string(genai.ModalityImage)}
		if req.AspectRatio != "" || req.ImageSize != "" {
			config.ImageConfig = &genai.ImageConfig{
				AspectRatio: req.AspectRatio,
				ImageSize:   req.ImageSize,
			}
		}
	}
	return config
}

// toReply keeps the parts of the first candidate in order.
func toReply(resp *genai.GenerateContentResponse) *llm.Reply {
	reply := &llm.Reply{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return reply
	}

	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		part := llm.Part{Text: p.Text}
		if p.InlineData != nil {
			part.Data = p.InlineData.Data
			part.MIMEType = p.InlineData.MIMEType
		}
		reply.Parts = append(reply.Parts, part)
	}
	return reply
}
