package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"seoforge/internal/seo"
)

// ExtractJSON returns the span from the first '{' to the last '}' of text,
// dropping any commentary the model put around the object.
func ExtractJSON(text string) (string, error) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last < first {
		return "", fmt.Errorf("%w: no JSON object in reply", seo.ErrMalformedResponse)
	}
	return text[first : last+1], nil
}

type shapeCheck func(doc gjson.Result) error

func decode(raw string, check shapeCheck, out any) error {
	if !gjson.Valid(raw) {
		return fmt.Errorf("%w: reply is not valid JSON", seo.ErrMalformedResponse)
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return fmt.Errorf("%w: reply is not a JSON object", seo.ErrSchemaViolation)
	}
	if err := check(doc); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: field %s: expected %s, got %s", seo.ErrSchemaViolation, typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return fmt.Errorf("%w: %w", seo.ErrMalformedResponse, err)
	}
	return nil
}

func present(v gjson.Result) bool {
	return v.Exists() && v.Type != gjson.Null
}

func requireKeys(obj gjson.Result, path string, keys ...string) error {
	for _, key := range keys {
		if !present(obj.Get(key)) {
			return fmt.Errorf("%w: missing required field %s", seo.ErrSchemaViolation, joinPath(path, key))
		}
	}
	return nil
}

func requireEach(arr gjson.Result, path string, keys ...string) error {
	if !arr.IsArray() {
		return fmt.Errorf("%w: %s is not an array", seo.ErrSchemaViolation, path)
	}
	for i, item := range arr.Array() {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if !item.IsObject() {
			return fmt.Errorf("%w: %s is not an object", seo.ErrSchemaViolation, itemPath)
		}
		if err := requireKeys(item, itemPath, keys...); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func checkOutline(doc gjson.Result) error {
	if err := requireKeys(doc, "", "suggestedTitles", "structure", "imageStrategy", "targetWordCount", "faqs"); err != nil {
		return err
	}
	if err := requireEach(doc.Get("structure"), "structure", "level", "title", "description", "guidelines"); err != nil {
		return err
	}

	strategy := doc.Get("imageStrategy")
	if !strategy.IsObject() {
		return fmt.Errorf("%w: imageStrategy is not an object", seo.ErrSchemaViolation)
	}
	if err := requireKeys(strategy, "imageStrategy", "totalImages", "placements"); err != nil {
		return err
	}
	if err := requireEach(strategy.Get("placements"), "imageStrategy.placements", "afterSection", "description", "aiPrompt"); err != nil {
		return err
	}

	return requireEach(doc.Get("faqs"), "faqs", "question", "answer", "rationale")
}

func checkDraftAnalysis(doc gjson.Result) error {
	return requireKeys(doc, "", "score", "missingSections", "keywordGaps", "suggestions", "readabilityFeedback")
}

func parseOutline(text string) (*seo.ArticleOutline, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var outline seo.ArticleOutline
	if err := decode(raw, checkOutline, &outline); err != nil {
		return nil, err
	}
	if err := outline.Validate(); err != nil {
		return nil, err
	}
	return &outline, nil
}

func parseDraftAnalysis(text string) (*seo.DraftAnalysis, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var analysis seo.DraftAnalysis
	if err := decode(raw, checkDraftAnalysis, &analysis); err != nil {
		return nil, err
	}
	if err := analysis.Validate(); err != nil {
		return nil, err
	}
	return &analysis, nil
}
