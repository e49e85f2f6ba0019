package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seoforge/internal/app"
	"seoforge/internal/brief"
	"seoforge/internal/seo"
)

var (
	outlineKeywords string
	outlineRegion   string
	outlineURLs     []string
	outlineSave     bool
	outlineFormat   string
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Build an SEO outline from competitor pages",
	Long: `Analyze competitor URLs for the given keywords and print a content outline:
suggested titles, heading structure, image strategy, word count and FAQs.`,
	RunE: runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineKeywords, "keywords", "k", "", "Target keywords")
	outlineCmd.Flags().StringVarP(&outlineRegion, "region", "r", "", "Target region, e.g. Taiwan")
	outlineCmd.Flags().StringSliceVarP(&outlineURLs, "url", "u", nil, "Competitor URL (repeatable)")
	outlineCmd.Flags().BoolVarP(&outlineSave, "save", "s", true, "Save the outline as an artifact")
	outlineCmd.Flags().StringVarP(&outlineFormat, "format", "f", "json", "Output format: json, markdown or html")
	_ = outlineCmd.MarkFlagRequired("keywords")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	switch outlineFormat {
	case "json", "markdown", "html":
	default:
		return fmt.Errorf("unknown format %q", outlineFormat)
	}

	ctx := cmd.Context()
	svc, _, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	req := seo.OutlineRequest{
		Keywords:       outlineKeywords,
		TargetRegion:   outlineRegion,
		CompetitorURLs: outlineURLs,
	}

	var res *app.OutlineResult
	err = runWithSpinner("Analyzing competitors", func() error {
		res, err = svc.Outline(ctx, req, outlineSave)
		return err
	})
	if err != nil {
		return err
	}

	if res.Location != "" {
		slog.Info("Outline saved", "location", res.Location)
	}

	return writeOutline(res.Outline, outlineFormat)
}

func writeOutline(outline *seo.ArticleOutline, format string) error {
	switch format {
	case "markdown":
		_, err := fmt.Fprint(os.Stdout, brief.Markdown(outline))
		return err
	case "html":
		html, err := brief.HTML(outline)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(os.Stdout, html)
		return err
	default:
		return printJSON(os.Stdout, outline)
	}
}
