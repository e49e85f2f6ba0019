package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"seoforge/internal/storage"
)

var artifactsKind string

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "List saved outlines and images",
	RunE:  runArtifacts,
}

func init() {
	artifactsCmd.Flags().StringVarP(&artifactsKind, "kind", "k", "all", "Artifact kind: all, outlines or images")
	rootCmd.AddCommand(artifactsCmd)
}

func artifactPrefix(kind string) (string, error) {
	switch kind {
	case "all":
		return "", nil
	case "outlines":
		return storage.OutlinesPrefix, nil
	case "images":
		return storage.ImagesPrefix, nil
	default:
		return "", fmt.Errorf("unknown artifact kind %q", kind)
	}
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	prefix, err := artifactPrefix(artifactsKind)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, _, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	names, err := svc.Artifacts(ctx, prefix)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println(infoStyle.Render("No artifacts yet"))
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
