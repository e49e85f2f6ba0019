package content

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"seoforge/internal/llm"
	"seoforge/internal/seo"
	"seoforge/pkg/prompts"
)

const (
	DefaultTextModel  = "gemini-3-pro-preview"
	DefaultImageModel = "gemini-3-pro-image-preview"
	DefaultTimeout    = 2 * time.Minute
	DefaultLanguage   = "Traditional Chinese (zh-TW)"

	imageStyleSuffix = "Photorealistic, high quality, professional business style, cinematic lighting, 4k, 16:9, 1K resolution."
	imageAspectRatio = "16:9"
	imageSize        = "1K"
)

type Options struct {
	TextModel  string
	ImageModel string
	Timeout    time.Duration
	Language   string
	Prompts    *prompts.Prompts
}

// Client turns outline, draft and image requests into generation calls and
// validates what comes back. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	gen        llm.Generator
	textModel  string
	imageModel string
	timeout    time.Duration
	language   string
	prompts    *prompts.Prompts
}

func NewClient(gen llm.Generator, opts Options) *Client {
	c := &Client{
		gen:        gen,
		textModel:  opts.TextModel,
		imageModel: opts.ImageModel,
		timeout:    opts.Timeout,
		language:   opts.Language,
		prompts:    opts.Prompts,
	}
	if c.textModel == "" {
		c.textModel = DefaultTextModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}
	if c.prompts == nil {
		c.prompts = prompts.Default()
	}
	return c
}

func (c *Client) AnalyzeCompetitors(ctx context.Context, req seo.OutlineRequest) (*seo.ArticleOutline, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt, err := c.prompts.RenderOutline(prompts.OutlineParams{
		Keywords:       req.Keywords,
		Region:         req.TargetRegion,
		CompetitorURLs: req.CompetitorURLs,
		Language:       c.language,
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	slog.Info("Analyzing competitors", "keywords", req.Keywords, "region", req.TargetRegion, "urls", len(req.CompetitorURLs))

	reply, err := c.call(ctx, llm.Request{
		Model:  c.textModel,
		System: c.prompts.System.Strategist,
		Prompt: prompt,
		Mode:   llm.ModeJSON,
		Schema: outlineSchema,
	})
	if err != nil {
		return nil, err
	}

	outline, err := parseOutline(reply.Text())
	if err != nil {
		return nil, fmt.Errorf("parse outline: %w", err)
	}

	slog.Debug("Outline ready",
		"titles", len(outline.SuggestedTitles),
		"sections", len(outline.Structure),
		"images", outline.ImageStrategy.TotalImages,
		"faqs", len(outline.FAQs),
	)
	return outline, nil
}

func (c *Client) AnalyzeDraft(ctx context.Context, req seo.DraftAnalysisRequest) (*seo.DraftAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outlineJSON, err := json.Marshal(req.Outline)
	if err != nil {
		return nil, fmt.Errorf("marshal outline: %w", err)
	}

	prompt, err := c.prompts.RenderDraft(prompts.DraftParams{
		OutlineJSON: string(outlineJSON),
		Draft:       req.DraftText,
		Keywords:    req.Keywords,
		Language:    c.language,
	})
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	slog.Info("Analyzing draft", "keywords", req.Keywords, "draftLength", len(req.DraftText))

	reply, err := c.call(ctx, llm.Request{
		Model:  c.textModel,
		System: c.prompts.System.Editor,
		Prompt: prompt,
		Mode:   llm.ModeJSON,
		Schema: draftAnalysisSchema,
	})
	if err != nil {
		return nil, err
	}

	analysis, err := parseDraftAnalysis(reply.Text())
	if err != nil {
		return nil, fmt.Errorf("parse draft analysis: %w", err)
	}

	slog.Debug("Draft analysis ready", "score", analysis.Score, "missing", len(analysis.MissingSections))
	return analysis, nil
}

func (c *Client) GenerateImage(ctx context.Context, prompt string) (seo.GeneratedImage, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("%w: image prompt is required", seo.ErrInvalidInput)
	}

	slog.Info("Generating image", "prompt", prompt)

	reply, err := c.call(ctx, llm.Request{
		Model:       c.imageModel,
		Prompt:      styledPrompt(prompt),
		Mode:        llm.ModeImage,
		AspectRatio: imageAspectRatio,
		ImageSize:   imageSize,
	})
	if err != nil {
		return "", err
	}

	for _, part := range reply.Parts {
		if len(part.Data) > 0 {
			return seo.NewGeneratedImage(part.Data), nil
		}
	}
	return "", fmt.Errorf("%w: reply has no image data", seo.ErrImageGenerationFailed)
}

func styledPrompt(prompt string) string {
	return strings.TrimRight(prompt, ". ") + ". " + imageStyleSuffix
}

func (c *Client) call(ctx context.Context, req llm.Request) (*llm.Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	reply, err := c.gen.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", seo.ErrRemoteCall, err)
	}
	if reply == nil {
		reply = &llm.Reply{}
	}

	slog.Debug("Generation call finished", "model", req.Model, "mode", req.Mode, "elapsed", time.Since(start))
	return reply, nil
}
