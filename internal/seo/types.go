package seo

import (
	"encoding/base64"
	"fmt"
	"strings"
)

type HeadingLevel string

const (
	LevelH2 HeadingLevel = "H2"
	LevelH3 HeadingLevel = "H3"
)

func (l HeadingLevel) Valid() bool {
	return l == LevelH2 || l == LevelH3
}

type OutlineRequest struct {
	Keywords       string   `json:"keywords"`
	TargetRegion   string   `json:"targetRegion"`
	CompetitorURLs []string `json:"competitorUrls"`
}

type ArticleOutline struct {
	SuggestedTitles []string      `json:"suggestedTitles"`
	Structure       []OutlineNode `json:"structure"`
	ImageStrategy   ImageStrategy `json:"imageStrategy"`
	TargetWordCount string        `json:"targetWordCount"`
	FAQs            []FAQItem     `json:"faqs"`
}

type OutlineNode struct {
	Level            HeadingLevel `json:"level"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Guidelines       string       `json:"guidelines"`
	SourceCompetitor string       `json:"sourceCompetitor,omitempty"`
}

type ImageStrategy struct {
	TotalImages int              `json:"totalImages"`
	Placements  []ImagePlacement `json:"placements"`
}

type ImagePlacement struct {
	AfterSection string `json:"afterSection"`
	Description  string `json:"description"`
	AIPrompt     string `json:"aiPrompt"`
}

type FAQItem struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Rationale string `json:"rationale"`
}

type DraftAnalysisRequest struct {
	Outline   ArticleOutline `json:"outline"`
	DraftText string         `json:"draftText"`
	Keywords  string         `json:"keywords"`
}

type DraftAnalysis struct {
	Score               float64  `json:"score"`
	MissingSections     []string `json:"missingSections"`
	KeywordGaps         []string `json:"keywordGaps"`
	Suggestions         []string `json:"suggestions"`
	ReadabilityFeedback string   `json:"readabilityFeedback"`
}

const imageDataURIPrefix = "data:image/png;base64,"

// GeneratedImage is a PNG image encoded as a data URI.
type GeneratedImage string

func NewGeneratedImage(data []byte) GeneratedImage {
	return GeneratedImage(imageDataURIPrefix + base64.StdEncoding.EncodeToString(data))
}

// Bytes decodes the base64 payload of the data URI.
func (g GeneratedImage) Bytes() ([]byte, error) {
	payload, ok := strings.CutPrefix(string(g), imageDataURIPrefix)
	if !ok {
		return nil, fmt.Errorf("not a png data uri")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	return data, nil
}
