package cli

import (
	"github.com/spf13/cobra"

	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/metrics"
	"github.com/wisdomalbert/portfolio/internal/server"
	"github.com/wisdomalbert/portfolio/pkg/logger"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if addr != "" {
				cfg.Addr = addr
			}
			if err := content.Validate(); err != nil {
				return err
			}

			var m *metrics.Manager
			if cfg.MetricsEnabled {
				m = metrics.NewManager(metrics.WithGoCollectors())
			}
			log := logger.Named("server")
			return server.New(cfg, log, m).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
