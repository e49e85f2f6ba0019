package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"
)

type Mode int

const (
	// ModeJSON asks for a reply that is a JSON document matching Request.Schema.
	ModeJSON Mode = iota
	// ModeImage asks for a reply carrying inline image data.
	ModeImage
)

func (m Mode) String() string {
	switch m {
	case ModeJSON:
		return "json"
	case ModeImage:
		return "image"
	default:
		return "unknown"
	}
}

type Request struct {
	Model  string
	System string
	Prompt string
	Mode   Mode
	Schema *genai.Schema

	AspectRatio string
	ImageSize   string
}

type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

type Reply struct {
	Parts []Part
}

// Text joins the text parts of the reply in order.
func (r *Reply) Text() string {
	var sb strings.Builder
	for _, p := range r.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// Generator is a remote generation backend.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Reply, error)
}
