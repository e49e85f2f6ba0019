package app

import (
	"context"
	"fmt"

	"seoforge/internal/content"
	"seoforge/internal/seo"
	"seoforge/internal/storage"
)

// Analyzer is the subset of content.Client the service drives.
type Analyzer interface {
	AnalyzeCompetitors(ctx context.Context, req seo.OutlineRequest) (*seo.ArticleOutline, error)
	AnalyzeDraft(ctx context.Context, req seo.DraftAnalysisRequest) (*seo.DraftAnalysis, error)
	GenerateImage(ctx context.Context, prompt string) (seo.GeneratedImage, error)
}

var _ Analyzer = (*content.Client)(nil)

type Service struct {
	analyzer Analyzer
	store    storage.Store
	closer   func() error
}

type ServiceOptions struct {
	Content Analyzer
	Store   storage.Store
	Closer  func() error
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		analyzer: opts.Content,
		store:    opts.Store,
		closer:   opts.Closer,
	}
}

func (s *Service) Analyzer() Analyzer {
	return s.analyzer
}

func (s *Service) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

type OutlineResult struct {
	Outline  *seo.ArticleOutline `json:"outline"`
	Location string              `json:"location,omitempty"`
}

func (s *Service) Outline(ctx context.Context, req seo.OutlineRequest, save bool) (*OutlineResult, error) {
	outline, err := s.analyzer.AnalyzeCompetitors(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &OutlineResult{Outline: outline}
	if save {
		location, err := storage.SaveOutline(ctx, s.store, req.Keywords, outline)
		if err != nil {
			return nil, fmt.Errorf("save outline: %w", err)
		}
		result.Location = location
	}
	return result, nil
}

// Draft analyzes a draft against a stored outline.
func (s *Service) Draft(ctx context.Context, outlineName, draft, keywords string) (*seo.DraftAnalysis, error) {
	outline, err := storage.LoadOutline(ctx, s.store, outlineName)
	if err != nil {
		return nil, fmt.Errorf("load outline: %w", err)
	}

	return s.analyzer.AnalyzeDraft(ctx, seo.DraftAnalysisRequest{
		Outline:   *outline,
		DraftText: draft,
		Keywords:  keywords,
	})
}

type ImageResult struct {
	Image    seo.GeneratedImage `json:"image"`
	Location string             `json:"location,omitempty"`
}

func (s *Service) Image(ctx context.Context, prompt string, save bool) (*ImageResult, error) {
	img, err := s.analyzer.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := &ImageResult{Image: img}
	if save {
		location, err := storage.SaveImage(ctx, s.store, img)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		result.Location = location
	}
	return result, nil
}

func (s *Service) Artifacts(ctx context.Context, prefix string) ([]string, error) {
	return s.store.List(ctx, prefix)
}
