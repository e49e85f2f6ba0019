package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"seoforge/internal/seo"
)

var (
	draftOutline  string
	draftFile     string
	draftKeywords string
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Score an article draft against a saved outline",
	Long: `Compare a draft with a previously saved outline and report a 0-100 score,
missing sections, keyword gaps, suggestions and readability feedback.

The draft is read from --file, or from stdin when --file is "-".`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().StringVarP(&draftOutline, "outline", "o", "", "Saved outline name, see 'seoforge artifacts'")
	draftCmd.Flags().StringVarP(&draftFile, "file", "f", "-", "Draft file, or - for stdin")
	draftCmd.Flags().StringVarP(&draftKeywords, "keywords", "k", "", "Target keywords")
	_ = draftCmd.MarkFlagRequired("outline")
	_ = draftCmd.MarkFlagRequired("keywords")
	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, args []string) error {
	draft, err := readDraft(cmd.InOrStdin(), draftFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, _, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	var analysis *seo.DraftAnalysis
	err = runWithSpinner("Analyzing draft", func() error {
		analysis, err = svc.Draft(ctx, draftOutline, draft, draftKeywords)
		return err
	})
	if err != nil {
		return err
	}

	return printJSON(os.Stdout, analysis)
}

func readDraft(stdin io.Reader, path string) (string, error) {
	if path == "" {
		return "", errors.New("draft file is required")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read draft: %w", err)
	}
	return string(data), nil
}
