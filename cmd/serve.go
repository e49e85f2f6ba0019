package cmd

import (
	"github.com/spf13/cobra"

	"seoforge/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the outline, draft and image operations over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, cfg, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	return server.ListenAndServe(ctx, addr, server.NewRouter(svc, cfg.Server.AllowedOrigins))
}
