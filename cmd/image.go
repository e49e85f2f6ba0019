package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seoforge/internal/app"
)

var (
	imagePrompt  string
	imageDataURI bool
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Generate an article image from a prompt",
	Long: `Generate a photorealistic 16:9 image for the prompt and save it as a PNG
artifact. Use --data-uri to print the image as a data URI instead.`,
	RunE: runImage,
}

func init() {
	imageCmd.Flags().StringVarP(&imagePrompt, "prompt", "p", "", "Image prompt, e.g. an outline placement's aiPrompt")
	imageCmd.Flags().BoolVar(&imageDataURI, "data-uri", false, "Print the data URI instead of saving")
	_ = imageCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(imageCmd)
}

func runImage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, _, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	var res *app.ImageResult
	err = runWithSpinner("Generating image", func() error {
		res, err = svc.Image(ctx, imagePrompt, !imageDataURI)
		return err
	})
	if err != nil {
		return err
	}

	if imageDataURI {
		_, err = fmt.Fprintln(os.Stdout, res.Image)
		return err
	}

	slog.Info("Image saved", "location", res.Location)
	fmt.Println(res.Location)
	return nil
}
