package content

import "google.golang.org/genai"

func float(v float64) *float64 { return &v }

var outlineNodeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"level":            {Type: genai.TypeString, Enum: []string{"H2", "H3"}},
		"title":            {Type: genai.TypeString},
		"description":      {Type: genai.TypeString, Description: "What the section covers"},
		"guidelines":       {Type: genai.TypeString, Description: "How to write the section"},
		"sourceCompetitor": {Type: genai.TypeString, Description: "Competitor URL that inspired the section"},
	},
	Required: []string{"level", "title", "description", "guidelines"},
}

var imagePlacementSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"afterSection": {Type: genai.TypeString, Description: "Title of the section the image follows"},
		"description":  {Type: genai.TypeString},
		"aiPrompt":     {Type: genai.TypeString, Description: "Prompt for an image generator"},
	},
	Required: []string{"afterSection", "description", "aiPrompt"},
}

var faqSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question":  {Type: genai.TypeString},
		"answer":    {Type: genai.TypeString},
		"rationale": {Type: genai.TypeString},
	},
	Required: []string{"question", "answer", "rationale"},
}

var outlineSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestedTitles": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"structure":       {Type: genai.TypeArray, Items: outlineNodeSchema},
		"imageStrategy": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"totalImages": {Type: genai.TypeInteger, Minimum: float(0)},
				"placements":  {Type: genai.TypeArray, Items: imagePlacementSchema},
			},
			Required: []string{"totalImages", "placements"},
		},
		"targetWordCount": {Type: genai.TypeString, Description: "Word count range, e.g. 2500-3000"},
		"faqs":            {Type: genai.TypeArray, Items: faqSchema},
	},
	Required: []string{"suggestedTitles", "structure", "imageStrategy", "targetWordCount", "faqs"},
}

var draftAnalysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":               {Type: genai.TypeNumber, Minimum: float(0), Maximum: float(100)},
		"missingSections":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"keywordGaps":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"suggestions":         {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"readabilityFeedback": {Type: genai.TypeString},
	},
	Required: []string{"score", "missingSections", "keywordGaps", "suggestions", "readabilityFeedback"},
}
