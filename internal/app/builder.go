package app

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"

	"seoforge/internal/content"
	"seoforge/internal/llm"
	"seoforge/internal/llm/gemini"
	"seoforge/internal/llm/groq"
	"seoforge/internal/llm/openai"
	"seoforge/internal/storage"
	"seoforge/pkg/config"
	"seoforge/pkg/httputil"
	"seoforge/pkg/prompts"
)

const userAgent = "seoforge"

type models struct {
	text  string
	image string
}

func BuildService(ctx context.Context, cfg *config.Config) (*Service, error) {
	p, err := prompts.Load()
	if err != nil {
		return nil, err
	}

	gen, m, err := buildGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, closer, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := content.NewClient(gen, content.Options{
		TextModel:  m.text,
		ImageModel: m.image,
		Timeout:    cfg.Content.Timeout,
		Language:   cfg.Content.Language,
		Prompts:    p,
	})

	slog.Debug("Service ready", "provider", cfg.Provider, "textModel", m.text, "imageModel", m.image)

	return NewService(ServiceOptions{
		Content: client,
		Store:   store,
		Closer:  closer,
	}), nil
}

func buildGenerator(ctx context.Context, cfg *config.Config) (llm.Generator, models, error) {
	switch cfg.Provider {
	case "groq":
		if cfg.GroqAPIKey == "" {
			return nil, models{}, fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
		client, err := groq.NewClient(cfg.GroqAPIKey, cfg.Groq.Model)
		if err != nil {
			return nil, models{}, err
		}
		return client, models{text: cfg.Groq.Model}, nil

	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, models{}, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		var client *openai.Client
		if cfg.OpenAI.BaseURL != "" {
			client = openai.NewClientWithBaseURL(cfg.OpenAIAPIKey, cfg.OpenAI.BaseURL)
		} else {
			client = openai.NewClient(cfg.OpenAIAPIKey)
		}
		return client, models{text: cfg.OpenAI.TextModel, image: cfg.OpenAI.ImageModel}, nil

	default:
		client, err := gemini.NewClient(ctx, gemini.Config{
			Backend:    cfg.Gemini.Backend,
			APIKey:     cfg.GeminiAPIKey,
			Project:    cfg.GCPProject,
			Location:   cfg.Gemini.Location,
			HTTPClient: httputil.NewClient(slog.Default()),
		})
		if err != nil {
			return nil, models{}, err
		}
		return client, models{text: cfg.Gemini.TextModel, image: cfg.Gemini.ImageModel}, nil
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (storage.Store, func() error, error) {
	if cfg.GCS.Enabled {
		gcs, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCS.Prefix, gcsOptions(cfg)...)
		if err != nil {
			return nil, nil, err
		}
		return gcs, gcs.Close, nil
	}

	local := storage.NewLocalStorage(cfg.Output.Dir)
	if err := local.EnsureDirectories(); err != nil {
		return nil, nil, err
	}
	return local, nil, nil
}

func gcsOptions(cfg *config.Config) []option.ClientOption {
	opts := []option.ClientOption{option.WithUserAgent(userAgent)}
	if cfg.GCS.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.GCS.Endpoint), option.WithoutAuthentication())
	}
	return opts
}
