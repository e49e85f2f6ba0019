package prompts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

//go:embed default.yaml
var defaultPrompts []byte

type Prompts struct {
	System  SystemPrompts  `yaml:"system"`
	Outline OutlinePrompts `yaml:"outline"`
	Draft   DraftPrompts   `yaml:"draft"`
}

type SystemPrompts struct {
	Strategist string `yaml:"strategist"`
	Editor     string `yaml:"editor"`
}

type OutlinePrompts struct {
	Analyze string `yaml:"analyze"`
}

type DraftPrompts struct {
	Review string `yaml:"review"`
}

type OutlineParams struct {
	Keywords       string
	Region         string
	CompetitorURLs []string
	Language       string
}

type DraftParams struct {
	OutlineJSON string
	Draft       string
	Keywords    string
	Language    string
}

// Load reads prompts.yaml from the working directory, falling back to the
// built-in prompts when the file does not exist. Empty keys in the file keep
// their built-in value.
func Load() (*Prompts, error) {
	p, err := LoadFrom(defaultPromptsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return p, err
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return p, nil
}

func Default() *Prompts {
	var p Prompts
	if err := yaml.Unmarshal(defaultPrompts, &p); err != nil {
		panic(fmt.Sprintf("parse built-in prompts: %v", err))
	}
	return &p
}

func (p *Prompts) RenderOutline(params OutlineParams) (string, error) {
	return render(p.Outline.Analyze, params)
}

func (p *Prompts) RenderDraft(params DraftParams) (string, error) {
	return render(p.Draft.Review, params)
}

var funcs = template.FuncMap{
	"join": strings.Join,
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
