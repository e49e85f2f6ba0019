// Package brief renders an outline as a writing brief for authors.
package brief

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"seoforge/internal/seo"
)

func Markdown(outline *seo.ArticleOutline) string {
	var b strings.Builder

	title := "Untitled"
	if len(outline.SuggestedTitles) > 0 {
		title = outline.SuggestedTitles[0]
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if len(outline.SuggestedTitles) > 1 {
		b.WriteString("**Alternative titles**\n\n")
		for _, t := range outline.SuggestedTitles[1:] {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Target length:** %s  \n**Images:** %d\n\n", outline.TargetWordCount, outline.ImageStrategy.TotalImages)

	placed := make([]bool, len(outline.ImageStrategy.Placements))
	for _, node := range outline.Structure {
		heading := "##"
		if node.Level == seo.LevelH3 {
			heading = "###"
		}
		fmt.Fprintf(&b, "%s %s\n\n", heading, node.Title)
		if node.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", node.Description)
		}
		if node.Guidelines != "" {
			fmt.Fprintf(&b, "> **Guidelines:** %s\n\n", node.Guidelines)
		}
		if node.SourceCompetitor != "" {
			fmt.Fprintf(&b, "_Source: <%s>_\n\n", node.SourceCompetitor)
		}

		for i, p := range outline.ImageStrategy.Placements {
			if !placed[i] && sameSection(p.AfterSection, node.Title) {
				writePlacement(&b, p)
				placed[i] = true
			}
		}
	}

	var unplaced []seo.ImagePlacement
	for i, p := range outline.ImageStrategy.Placements {
		if !placed[i] {
			unplaced = append(unplaced, p)
		}
	}
	if len(unplaced) > 0 {
		b.WriteString("## Other images\n\n")
		for _, p := range unplaced {
			writePlacement(&b, p)
		}
	}

	if len(outline.FAQs) > 0 {
		b.WriteString("## FAQ\n\n")
		for _, f := range outline.FAQs {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n_Why: %s_\n\n", f.Question, f.Answer, f.Rationale)
		}
	}

	return b.String()
}

func writePlacement(b *strings.Builder, p seo.ImagePlacement) {
	fmt.Fprintf(b, "> 🖼 **Image after \"%s\":** %s  \n> Prompt: `%s`\n\n", p.AfterSection, p.Description, p.AIPrompt)
}

func sameSection(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func HTML(outline *seo.ArticleOutline) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(outline)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
