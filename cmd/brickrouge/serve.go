package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brickrouge-dev/brickrouge/internal/preview"
)

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		port int
		host string
		hot  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery preview server",
		Long: `Start a server rendering every widget sample.

With hot reload, open pages refresh when assets, catalogs or notes
change. Render metrics are served on /metrics.

Examples:
  brickrouge serve
  brickrouge serve --port=8080 --hot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if port > 0 {
				cfg.Preview.Port = port
			}
			if host != "" {
				cfg.Preview.Host = host
			}
			if cmd.Flags().Changed("hot") {
				cfg.Preview.HotReload = hot
			}

			logger := opts.logger(cmd.ErrOrStderr())
			server := preview.NewServer(preview.ServerOptions{
				Config: cfg,
				Logger: logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd.OutOrStdout(), "Gallery at %s", cfg.PreviewURL())
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from brickrouge.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from brickrouge.json)")
	cmd.Flags().BoolVar(&hot, "hot", false, "Reload pages on file change")

	return cmd
}
