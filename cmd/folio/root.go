package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"folio.dev/internal/config"
	applog "folio.dev/internal/log"
	"folio.dev/internal/services"
)

// NewRootCmd creates the root command for folio.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Portfolio site and catalog browser",
		Long: `folio renders a portfolio from a JSON project catalog.

The catalog is a file path or an http(s) URL. Each project's gallery is
discovered by probing <folder>/1.jpg, <folder>/2.jpg, ... next to its cover
image until the first miss.

Configuration is read from --config, ./folio.yaml or the XDG config directory.`,
		Version:       currentVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: ./folio.yaml or XDG config dir)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewBrowseCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewGalleryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration named by --config and applies --verbose.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// newLogger builds the process logger on stderr.
func newLogger(cfg *config.Config) *slog.Logger {
	logger := applog.New(os.Stderr, cfg.LogFormat, cfg.Verbose)
	slog.SetDefault(logger)
	return logger
}

// newProjectService loads the catalog and wires the gallery loader. Images
// are probed with HEAD requests when an image base URL is configured, and on
// the local site root otherwise.
func newProjectService(ctx context.Context, cfg *config.Config, logger *slog.Logger) *services.ProjectService {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	projects := services.LoadCatalog(ctx, client, cfg.CatalogSource, logger)

	var prober services.Prober
	if cfg.ImageBaseURL != "" {
		prober = services.NewHTTPProber(client, cfg.ImageBaseURL)
	} else {
		prober = services.NewFSProber(os.DirFS(cfg.SiteRoot))
	}
	loader := services.NewGalleryLoader(prober,
		services.WithMaxImages(cfg.MaxGalleryImages),
		services.WithGalleryLogger(logger),
	)
	return services.NewProjectService(projects, loader, logger)
}
