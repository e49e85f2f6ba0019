package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"seoforge/internal/seo"
)

const (
	OutlinesPrefix = "outlines/"
	ImagesPrefix   = "images/"
)

var ErrNotFound = errors.New("artifact not found")

// checkName accepts only clean, relative, slash-separated names.
func checkName(name string) error {
	if !fs.ValidPath(name) || name == "." {
		return fmt.Errorf("%w: invalid artifact name %q", seo.ErrInvalidInput, name)
	}
	return nil
}

// checkPrefix is checkName for list prefixes, which may be empty or end in '/'.
func checkPrefix(prefix string) error {
	if prefix == "" {
		return nil
	}
	return checkName(strings.TrimSuffix(prefix, "/"))
}

// Store persists generated artifacts under slash-separated names.
type Store interface {
	Save(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Load(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
}

var nonSlug = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func slugify(s string) string {
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if r := []rune(slug); len(r) > 48 {
		slug = strings.TrimRight(string(r[:48]), "-")
	}
	if slug == "" {
		return "outline"
	}
	return slug
}

func OutlineName(keywords string) string {
	return OutlinesPrefix + slugify(keywords) + "-" + uuid.NewString()[:8] + ".json"
}

func ImageName() string {
	return ImagesPrefix + uuid.NewString() + ".png"
}

func SaveOutline(ctx context.Context, s Store, keywords string, outline *seo.ArticleOutline) (string, error) {
	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal outline: %w", err)
	}
	return s.Save(ctx, OutlineName(keywords), data, "application/json")
}

func LoadOutline(ctx context.Context, s Store, name string) (*seo.ArticleOutline, error) {
	data, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	var outline seo.ArticleOutline
	if err := json.Unmarshal(data, &outline); err != nil {
		return nil, fmt.Errorf("parse outline %s: %w", name, err)
	}
	return &outline, nil
}

func SaveImage(ctx context.Context, s Store, img seo.GeneratedImage) (string, error) {
	data, err := img.Bytes()
	if err != nil {
		return "", err
	}
	return s.Save(ctx, ImageName(), data, "image/png")
}
