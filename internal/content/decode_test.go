package content

import (
	"errors"
	"testing"

	"seoforge/internal/seo"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{
			name: "surroundingCommentary",
			text: "Here is the result:\n{\"a\":1}\nThanks",
			want: `{"a":1}`,
		},
		{
			name: "bareObject",
			text: `{"a":{"b":2}}`,
			want: `{"a":{"b":2}}`,
		},
		{
			name: "codeFence",
			text: "```json\n{\"score\": 10}\n```",
			want: `{"score": 10}`,
		},
		{
			name:    "noBraces",
			text:    "I could not analyze these pages.",
			wantErr: seo.ErrMalformedResponse,
		},
		{
			name:    "closingBeforeOpening",
			text:    "} oops {",
			wantErr: seo.ErrMalformedResponse,
		},
		{
			name:    "empty",
			text:    "",
			wantErr: seo.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExtractJSON() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSON() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}

			again, err := ExtractJSON(got)
			if err != nil || again != got {
				t.Errorf("ExtractJSON() not idempotent: %q -> %q (%v)", got, again, err)
			}
		})
	}
}

func TestParseOutlineErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "invalidSyntax",
			text:    `{"suggestedTitles": ["a",}`,
			wantErr: seo.ErrMalformedResponse,
		},
		{
			name:    "missingTopLevelField",
			text:    `{"suggestedTitles": [], "structure": [], "imageStrategy": {"totalImages": 0, "placements": []}, "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "nullField",
			text:    `{"suggestedTitles": null, "structure": [], "imageStrategy": {"totalImages": 0, "placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "nodeMissingGuidelines",
			text:    `{"suggestedTitles": [], "structure": [{"level": "H2", "title": "t", "description": "d"}], "imageStrategy": {"totalImages": 0, "placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "placementMissingPrompt",
			text:    `{"suggestedTitles": [], "structure": [], "imageStrategy": {"totalImages": 1, "placements": [{"afterSection": "a", "description": "d"}]}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "imageStrategyMissingCount",
			text:    `{"suggestedTitles": [], "structure": [], "imageStrategy": {"placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "faqMissingRationale",
			text:    `{"suggestedTitles": [], "structure": [], "imageStrategy": {"totalImages": 0, "placements": []}, "targetWordCount": "1000", "faqs": [{"question": "q", "answer": "a"}]}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "structureNotArray",
			text:    `{"suggestedTitles": [], "structure": "H2 intro", "imageStrategy": {"totalImages": 0, "placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "wrongFieldType",
			text:    `{"suggestedTitles": [], "structure": [], "imageStrategy": {"totalImages": "two", "placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "unknownLevel",
			text:    `{"suggestedTitles": [], "structure": [{"level": "H1", "title": "t", "description": "d", "guidelines": "g"}], "imageStrategy": {"totalImages": 0, "placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "negativeImageCount",
			text:    `{"suggestedTitles": [], "structure": [], "imageStrategy": {"totalImages": -2, "placements": []}, "targetWordCount": "1000", "faqs": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOutline(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseOutline() error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("parseOutline() returned partial outline %+v", got)
			}
		})
	}
}

func TestParseDraftAnalysisErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "scoreTooHigh",
			text:    `{"score": 150, "missingSections": [], "keywordGaps": [], "suggestions": [], "readabilityFeedback": "ok"}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "scoreNegative",
			text:    `{"score": -5, "missingSections": [], "keywordGaps": [], "suggestions": [], "readabilityFeedback": "ok"}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "scoreAsString",
			text:    `{"score": "80", "missingSections": [], "keywordGaps": [], "suggestions": [], "readabilityFeedback": "ok"}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "missingFeedback",
			text:    `{"score": 80, "missingSections": [], "keywordGaps": [], "suggestions": []}`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "topLevelArray",
			text:    `[{"score": 80}]`,
			wantErr: seo.ErrSchemaViolation,
		},
		{
			name:    "noJSON",
			text:    "The draft looks great!",
			wantErr: seo.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDraftAnalysis(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseDraftAnalysis() error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("parseDraftAnalysis() returned partial analysis %+v", got)
			}
		})
	}
}
