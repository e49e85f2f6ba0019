package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seoforge/internal/app"
	"seoforge/pkg/config"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "seoforge",
	Short: "Build SEO outlines, score drafts and generate article images",
	Long: `Seoforge analyzes competitor pages into an SEO content outline, scores
article drafts against that outline and generates illustrative images,
using a hosted generative-AI service.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default "+config.DefaultPath+")")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogger()
	}
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadService(ctx context.Context) (*app.Service, *config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := app.BuildService(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	if configPath == "" {
		return config.Load(ctx)
	}
	return config.LoadFrom(ctx, configPath)
}

func configFile() string {
	if configPath == "" {
		return config.DefaultPath
	}
	return configPath
}
