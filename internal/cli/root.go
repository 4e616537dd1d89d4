// Package cli defines the portfolio command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisdomalbert/portfolio/internal/config"
	"github.com/wisdomalbert/portfolio/pkg/logger"
)

var (
	configPath string
	cfg        *config.Config
)

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRoot().ExecuteContext(ctx)
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve and export the portfolio page",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := os.Setenv(config.EnvFile, configPath); err != nil {
					return err
				}
			}
			c, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			logger.InitWriter(cmd.ErrOrStderr(), c.LogJSON)
			if err := logger.SetLevelString(c.LogLevel); err != nil {
				return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides "+config.EnvFile+")")

	root.AddCommand(serveCmd(), renderCmd(), checkCmd(), contentCmd())
	return root
}
