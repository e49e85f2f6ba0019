package brief

import (
	"strings"
	"testing"

	"seoforge/internal/seo"
)

func sampleOutline() *seo.ArticleOutline {
	return &seo.ArticleOutline{
		SuggestedTitles: []string{"Pour-Over Guide", "Brew Like a Barista"},
		Structure: []seo.OutlineNode{
			{Level: seo.LevelH2, Title: "Equipment", Description: "Gear overview", Guidelines: "Use a table", SourceCompetitor: "https://a.example"},
			{Level: seo.LevelH3, Title: "Kettles", Description: "Gooseneck kettles"},
			{Level: seo.LevelH2, Title: "Brewing", Description: "Step by step"},
		},
		ImageStrategy: seo.ImageStrategy{
			TotalImages: 2,
			Placements: []seo.ImagePlacement{
				{AfterSection: "brewing", Description: "Pouring water", AIPrompt: "kettle pouring"},
				{AfterSection: "Conclusion", Description: "Finished cup", AIPrompt: "cup of coffee"},
			},
		},
		TargetWordCount: "2000-2500",
		FAQs: []seo.FAQItem{
			{Question: "What grind size?", Answer: "Medium-fine.", Rationale: "Top query"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleOutline())

	for _, want := range []string{
		"# Pour-Over Guide\n",
		"- Brew Like a Barista\n",
		"**Target length:** 2000-2500",
		"**Images:** 2",
		"## Equipment\n",
		"### Kettles\n",
		"> **Guidelines:** Use a table",
		"_Source: <https://a.example>_",
		"## Other images",
		"### What grind size?",
		"_Why: Top query_",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q\n%s", want, md)
		}
	}

	brewing := strings.Index(md, "## Brewing")
	pouring := strings.Index(md, "Pouring water")
	other := strings.Index(md, "## Other images")
	finished := strings.Index(md, "Finished cup")
	if !(brewing < pouring && pouring < other && other < finished) {
		t.Errorf("image placements out of order: brewing=%d pouring=%d other=%d finished=%d", brewing, pouring, other, finished)
	}
	if strings.Index(md, "## Equipment") > strings.Index(md, "### Kettles") {
		t.Error("structure order not preserved")
	}
}

func TestMarkdownEmptyOutline(t *testing.T) {
	md := Markdown(&seo.ArticleOutline{})
	if !strings.HasPrefix(md, "# Untitled\n") {
		t.Errorf("Markdown() = %q", md)
	}
	if strings.Contains(md, "## FAQ") || strings.Contains(md, "## Other images") {
		t.Errorf("Markdown() should omit empty sections: %q", md)
	}
}

func TestHTML(t *testing.T) {
	html, err := HTML(sampleOutline())
	if err != nil {
		t.Fatalf("HTML() error: %v", err)
	}

	for _, want := range []string{
		"<h1>Pour-Over Guide</h1>",
		"<h2>Equipment</h2>",
		"<h3>Kettles</h3>",
		"<code>kettle pouring</code>",
		"<blockquote>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML() missing %q\n%s", want, html)
		}
	}
}
