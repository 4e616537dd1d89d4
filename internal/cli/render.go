package cli

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wisdomalbert/portfolio/internal/page"
	"github.com/wisdomalbert/portfolio/internal/server"
	"github.com/wisdomalbert/portfolio/pkg/logger"
)

func renderCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export the page as static files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := page.DefaultOptions()
			opts.AssetPrefix = "static"
			if cfg.SiteTitle != "" {
				opts.Title = cfg.SiteTitle
			}
			if err := Export(cmd.Context(), out, opts); err != nil {
				return err
			}
			logger.Named("render").Info(cmd.Context(), "exported", logger.String("dir", out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

// Export writes index.html and the runtime assets under dir.
func Export(ctx context.Context, dir string, opts page.Options) error {
	var buf bytes.Buffer
	if err := page.Document(opts).Render(ctx, &buf); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return err
	}

	assets := server.Assets()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, opts.AssetPrefix, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
