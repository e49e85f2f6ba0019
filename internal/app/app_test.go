package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seoforge/internal/seo"
	"seoforge/internal/storage"
	"seoforge/pkg/config"
)

type mockAnalyzer struct {
	outline  *seo.ArticleOutline
	analysis *seo.DraftAnalysis
	image    seo.GeneratedImage
	err      error

	gotDraft seo.DraftAnalysisRequest
}

func (m *mockAnalyzer) AnalyzeCompetitors(_ context.Context, _ seo.OutlineRequest) (*seo.ArticleOutline, error) {
	return m.outline, m.err
}

func (m *mockAnalyzer) AnalyzeDraft(_ context.Context, req seo.DraftAnalysisRequest) (*seo.DraftAnalysis, error) {
	m.gotDraft = req
	return m.analysis, m.err
}

func (m *mockAnalyzer) GenerateImage(_ context.Context, _ string) (seo.GeneratedImage, error) {
	return m.image, m.err
}

func newTestService(t *testing.T, a *mockAnalyzer) (*Service, *storage.LocalStorage) {
	t.Helper()
	store := storage.NewLocalStorage(t.TempDir())
	return NewService(ServiceOptions{Content: a, Store: store}), store
}

func TestServiceGetters(t *testing.T) {
	a := &mockAnalyzer{}
	svc, _ := newTestService(t, a)

	if svc.Analyzer() != a {
		t.Error("Analyzer() returned wrong analyzer")
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close() without closer error = %v", err)
	}
}

func TestServiceClose(t *testing.T) {
	closed := false
	svc := NewService(ServiceOptions{Closer: func() error {
		closed = true
		return nil
	}})

	if err := svc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !closed {
		t.Error("Close() did not call closer")
	}
}

func TestOutlineSaveAndDraft(t *testing.T) {
	a := &mockAnalyzer{
		outline: &seo.ArticleOutline{
			SuggestedTitles: []string{"Guide"},
			Structure:       []seo.OutlineNode{{Level: seo.LevelH2, Title: "Intro"}},
		},
		analysis: &seo.DraftAnalysis{Score: 64},
	}
	svc, _ := newTestService(t, a)
	ctx := context.Background()

	res, err := svc.Outline(ctx, seo.OutlineRequest{Keywords: "coffee", CompetitorURLs: []string{"https://a.example"}}, true)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if res.Location == "" {
		t.Fatal("Outline() with save should return a location")
	}

	names, err := svc.Artifacts(ctx, storage.OutlinesPrefix)
	if err != nil || len(names) != 1 {
		t.Fatalf("Artifacts() = %v, %v", names, err)
	}

	analysis, err := svc.Draft(ctx, names[0], "my draft", "coffee")
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if analysis.Score != 64 {
		t.Errorf("Draft() score = %v", analysis.Score)
	}
	if a.gotDraft.Outline.Structure[0].Title != "Intro" || a.gotDraft.DraftText != "my draft" {
		t.Errorf("AnalyzeDraft() got %+v", a.gotDraft)
	}
}

func TestOutlineWithoutSave(t *testing.T) {
	svc, _ := newTestService(t, &mockAnalyzer{outline: &seo.ArticleOutline{}})

	res, err := svc.Outline(context.Background(), seo.OutlineRequest{}, false)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}
	if res.Location != "" {
		t.Errorf("Location = %q, want empty", res.Location)
	}

	names, _ := svc.Artifacts(context.Background(), "")
	if len(names) != 0 {
		t.Errorf("Artifacts() = %v, want none", names)
	}
}

func TestOutlineErrorPropagates(t *testing.T) {
	svc, _ := newTestService(t, &mockAnalyzer{err: seo.ErrSchemaViolation})

	_, err := svc.Outline(context.Background(), seo.OutlineRequest{}, true)
	if !errors.Is(err, seo.ErrSchemaViolation) {
		t.Errorf("Outline() error = %v, want ErrSchemaViolation", err)
	}
}

func TestDraftMissingOutline(t *testing.T) {
	svc, _ := newTestService(t, &mockAnalyzer{})

	_, err := svc.Draft(context.Background(), "outlines/nope.json", "", "coffee")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Draft() error = %v, want ErrNotFound", err)
	}
}

func TestImageSave(t *testing.T) {
	svc, _ := newTestService(t, &mockAnalyzer{image: seo.NewGeneratedImage([]byte("\x89PNG"))})

	res, err := svc.Image(context.Background(), "a red barn", true)
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if !strings.HasSuffix(res.Location, ".png") {
		t.Errorf("Location = %q", res.Location)
	}
	data, err := os.ReadFile(res.Location)
	if err != nil || string(data) != "\x89PNG" {
		t.Errorf("saved image = %q, %v", data, err)
	}
}

func TestImageFailureSavesNothing(t *testing.T) {
	svc, _ := newTestService(t, &mockAnalyzer{err: seo.ErrImageGenerationFailed})

	_, err := svc.Image(context.Background(), "a red barn", true)
	if !errors.Is(err, seo.ErrImageGenerationFailed) {
		t.Fatalf("Image() error = %v", err)
	}
	names, _ := svc.Artifacts(context.Background(), storage.ImagesPrefix)
	if len(names) != 0 {
		t.Errorf("Artifacts() = %v, want none", names)
	}
}

func TestBuildGeneratorRequiresKeys(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{name: "gemini", cfg: config.Config{Provider: "gemini", Gemini: config.GeminiConfig{Backend: "gemini"}}},
		{name: "groq", cfg: config.Config{Provider: "groq"}},
		{name: "openai", cfg: config.Config{Provider: "openai"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := buildGenerator(context.Background(), &tt.cfg); err == nil {
				t.Error("buildGenerator() expected error for missing api key")
			}
		})
	}
}

func TestBuildGeneratorModels(t *testing.T) {
	cfg := &config.Config{
		Provider:     "openai",
		OpenAIAPIKey: "k",
		OpenAI:       config.OpenAIConfig{TextModel: "gpt-4o", ImageModel: "dall-e-3"},
	}

	gen, m, err := buildGenerator(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildGenerator() error = %v", err)
	}
	if gen == nil || m.text != "gpt-4o" || m.image != "dall-e-3" {
		t.Errorf("buildGenerator() = %v, %+v", gen, m)
	}
}

func TestBuildStoreLocal(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := &config.Config{Output: config.OutputConfig{Dir: dir}}

	store, closer, err := buildStore(context.Background(), cfg)
	if err != nil {
		t.Fatalf("buildStore() error = %v", err)
	}
	if closer != nil {
		t.Error("local store should not need a closer")
	}
	if _, ok := store.(*storage.LocalStorage); !ok {
		t.Errorf("buildStore() = %T, want *storage.LocalStorage", store)
	}
	if _, err := os.Stat(filepath.Join(dir, "images")); err != nil {
		t.Errorf("images directory not created: %v", err)
	}
}

func TestGCSOptions(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     int
	}{
		{name: "default", want: 1},
		{name: "emulator", endpoint: "http://localhost:4443/storage/v1/", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{GCS: config.GCSConfig{Endpoint: tt.endpoint}}
			if got := gcsOptions(cfg); len(got) != tt.want {
				t.Errorf("gcsOptions() returned %d options, want %d", len(got), tt.want)
			}
		})
	}
}
